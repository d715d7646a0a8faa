package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth     = RouteApiV1 + "/auth"
	RouteRegister = RouteAuth + "/register"
	RouteLogin    = RouteAuth + "/login"
	RouteMe       = RouteAuth + "/me"

	// profile
	RouteProviderProfile = RouteApiV1 + "/profile/provider"

	// admin
	RouteUsers = RouteApiV1 + "/users"
	RouteUser  = RouteUsers + "/:user_id"

	// catalogue
	RouteCategories = RouteApiV1 + "/categories"
	RouteCategory   = RouteCategories + "/:category_id"
	RouteProviders  = RouteApiV1 + "/providers"
	RouteProvider   = RouteProviders + "/:provider_id"

	// service requests
	RouteRequests = RouteApiV1 + "/requests"
	RouteRequest  = RouteRequests + "/:request_id"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
