package dto

// StatsResponse admin overview.
type StatsResponse struct {
	TotalUsers           int            `json:"total_users"`
	ActiveUsers          int            `json:"active_users"`
	InactiveUsers        int            `json:"inactive_users"`
	NewUsersLast30Days   int            `json:"new_users_last_30_days"`
	UsersByRole          map[string]int `json:"users_by_role"`
	ApplicationsByStatus map[string]int `json:"applications_by_status"`
}
