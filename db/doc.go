// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open picks the driver for the dialect and pings the server:

	conn, err := db.Open(ctx, db.SQLite, "Server.db")

SQLite (modernc.org/sqlite) is the default and keeps a single open
connection. PostgreSQL (lib/pq) is available for shared deployments.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn, db.SQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

Table and column names are part of the client contract:

  - Users: UserID, userName, email, password, bio, userScore
  - Questions: question text plus option1..4 / score1..4
  - ElectricityBills, WaterBills: imported bill summaries
  - UserChallenges: (UserID, challenge) pairs
  - UserResponses: one column per literal survey question
  - Appliances: 24 per-appliance counts

There are no foreign keys; rows reference users by UserID only.

# Placeholders

Queries are written with ? placeholders. Rebind converts them to $N for
PostgreSQL, skipping question marks inside quoted survey column names.

# Seeding

SeedQuestionsFile loads a YAML question list into an empty Questions table.
*/
package db
