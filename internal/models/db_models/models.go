package db_models

// All lists every table in migration order.
func All() []any {
	return []any{
		&Itinerary{},
		&Review{},
		&Booking{},
		&Inquiry{},
		&Donation{},
		&TeamMember{},
		&FleetVehicle{},
		&Volunteer{},
	}
}
