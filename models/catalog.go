// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// SurveyQuestions are the literal column names of the UserResponses table
// and the JSON keys accepted by the survey submission endpoint.
var SurveyQuestions = []string{
	"How many people live in your household?",
	"What type of home do you live in?",
	"How do you usually commute to work or school?",
	"How often do you use air conditioning or heating?",
	"Do you turn off lights and appliances when not in use?",
	"What is your main source of cooking fuel?",
	"How long is your average shower?",
	"Do you use energy-efficient bulbs?",
	"Do you have solar panels or other renewable energy sources?",
	"What would motivate you most to save energy and water?",
}

// ApplianceFields are the per-appliance count columns of the Appliances table.
var ApplianceFields = []string{
	"fan",
	"tubelight",
	"led_bulb",
	"cfl_bulb",
	"refrigerator",
	"air_conditioner",
	"washing_machine",
	"television",
	"microwave",
	"induction_cooktop",
	"electric_kettle",
	"water_heater",
	"iron",
	"mixer_grinder",
	"toaster",
	"computer",
	"laptop",
	"wifi_router",
	"air_cooler",
	"room_heater",
	"vacuum_cleaner",
	"dishwasher",
	"water_purifier",
	"exhaust_fan",
}

// ElectricityBillColumns lists the ElectricityBills columns written on import,
// in insert order.
var ElectricityBillColumns = []string{
	"name", "address", "bill_amount", "due_date", "account_number", "billing_period",
	"additional_instructions", "cost_fluctuations", "peak_usage_hours", "monthly_comparison",
	"avg_daily_consumption", "energy_efficiency_tips", "additional_parameters",
	"current_units_consumed", "subsidies_unit", "consumption_history", "goal_units",
}

// WaterBillColumns lists the WaterBills columns written on import, in insert order.
var WaterBillColumns = []string{
	"name", "water_usage", "bill_cycle", "current_consumption_units", "current_consumption_days",
	"billing_period", "bill_date", "account_number", "due_date", "bill_amount",
	"additional_instructions", "cost_fluctuations", "monthly_comparison", "avg_daily_consumption",
	"water_efficiency_tips", "subsidies_unit", "challenges", "bill_history", "goal_units",
}
