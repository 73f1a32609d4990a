package model

// SiteMetrics are the public counters shown on the home dashboard.
type SiteMetrics struct {
	TotalChecks  int64 `json:"totalChecks"`
	TotalDomains int64 `json:"totalDomains"`
	TotalUsers   int64 `json:"totalUsers"`
}

// AdminMetrics are the aggregate counters shown on the admin metrics screen.
type AdminMetrics struct {
	TotalChecks             int64   `json:"totalChecks"`
	TotalDomains            int64   `json:"totalDomains"`
	TotalUsers              int64   `json:"totalUsers"`
	ActiveUsers             int64   `json:"activeUsers"`
	ChecksLast24Hours       int64   `json:"checksLast24Hours"`
	DomainsAddedLast24Hours int64   `json:"domainsAddedLast24Hours"`
	UsersAddedLast24Hours   int64   `json:"usersAddedLast24Hours"`
	SystemLoad              float64 `json:"systemLoad"`
	MemoryUsage             float64 `json:"memoryUsage"`
	DiskUsage               float64 `json:"diskUsage"`
}
