package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	DashboardHandler *DashboardHandler
	MemberHandler    *MemberHandler
	RevenueHandler   *RevenueHandler
	ReviewHandler    *ReviewHandler
	CostHandler      *CostHandler
	PricingHandler   *PricingHandler
	ChatHandler      *ChatHandler
}
