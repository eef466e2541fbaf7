package dto

// DashboardStats - сводка для главной страницы админки
type DashboardStats struct {
	TodayVisitors   int    `json:"todayVisitors"`
	TotalMembers    int64  `json:"totalMembers"`
	MonthlyRevenue  int64  `json:"monthlyRevenue"`
	AvgRating       string `json:"avgRating"`
	UnansweredChats int64  `json:"unansweredChats"`
}

// DailySignupPoint - регистрации за день
type DailySignupPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// DailyRevenuePoint - выручка за день
type DailyRevenuePoint struct {
	Date  string `json:"date"`
	Total int64  `json:"total"`
	Count int64  `json:"count"`
}

// PackageSalesPoint - продажи в разрезе пакетов
type PackageSalesPoint struct {
	PackageName string `json:"packageName"`
	Count       int64  `json:"count"`
	Total       int64  `json:"total"`
}

// RevenueSourcePoint - выручка в разрезе площадок
type RevenueSourcePoint struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
	Total  int64  `json:"total"`
}
