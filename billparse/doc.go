// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package billparse turns a bill summary into the columns of the bill tables.

Summaries are the "Field: Value" text produced upstream from an electricity
or water bill PDF:

	- Name: A. Sharma
	- Bill Amount: ₹1,240
	- Consumption History: Jan 2025: 500 units, Feb 2025: 450 units

Parse fills every expected field of the bill type (NotFound when absent),
and Columns lines the result up with the ElectricityBills or WaterBills
insert order.
*/
package billparse
