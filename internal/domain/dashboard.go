package domain

// DashboardUser is the mock identity shown on the admin dashboard.
type DashboardUser struct {
	ID     int    `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Email  string `json:"email" yaml:"email"`
	Role   string `json:"role" yaml:"role"`
	Avatar string `json:"avatar" yaml:"avatar"`
}

// DashboardMetrics holds the aggregate counters.
type DashboardMetrics struct {
	TotalServices        int `json:"totalServices"`
	ActiveTeamMembers    int `json:"activeTeamMembers"`
	TotalConsultations   int `json:"totalConsultations"`
	PendingConsultations int `json:"pendingConsultations"`
	ResponseRate         int `json:"responseRate"`
}

// ActivityItem summarizes a recent event for the dashboard feed.
type ActivityItem struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Timestamp string `json:"timestamp"`
}

// DashboardSnapshot is computed on demand and never stored.
type DashboardSnapshot struct {
	User           DashboardUser    `json:"user"`
	Metrics        DashboardMetrics `json:"metrics"`
	RecentActivity []ActivityItem   `json:"recentActivity"`
}
