package models

// VolunteerStats summarises a user's participation.
type VolunteerStats struct {
	HoursVolunteered       float64 `json:"hours_volunteered"`
	OpportunitiesCompleted int     `json:"opportunities_completed"`
	ChurchesServed         int     `json:"churches_served"`
}

// OrganizationStats summarises an organization's opportunities and volunteers.
// CompletedOpportunities counts inactive opportunities; there is no separate completed flag.
type OrganizationStats struct {
	ActiveOpportunities    int `json:"active_opportunities"`
	TotalVolunteers        int `json:"total_volunteers"`
	CompletedOpportunities int `json:"completed_opportunities"`
}
