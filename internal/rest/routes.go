package rest

import "net/http"

// Route is an HTTP method and a path template. Path templates contain
// {slug} placeholders that the request builder substitutes and escapes.
type Route struct {
	Method string
	Path   string
}

// API routes, relative to the client's base URL.
var (
	routeCreateProject = Route{http.MethodPost, "/projects"}
	routeFetchProject  = Route{http.MethodGet, "/projects/{namespace}"}
	routeEditProject   = Route{http.MethodPatch, "/projects/{namespace}"}
	routeDeleteProject = Route{http.MethodDelete, "/projects/{namespace}"}

	routeCreateFeed = Route{http.MethodPost, "/projects/{namespace}/feeds"}
	routeEditFeed   = Route{http.MethodPatch, "/projects/{namespace}/feeds/{feed}"}
	routeDeleteFeed = Route{http.MethodDelete, "/projects/{namespace}/feeds/{feed}"}

	routeCreateLog = Route{http.MethodPost, "/projects/{namespace}/feeds/{feed}/logs"}
	routeFetchLog  = Route{http.MethodGet, "/projects/{namespace}/feeds/{feed}/logs/{log_id}"}
	routeFetchLogs = Route{http.MethodGet, "/projects/{namespace}/feeds/{feed}/logs"}
	routeEditLog   = Route{http.MethodPatch, "/projects/{namespace}/feeds/{feed}/logs/{log_id}"}
	routeDeleteLog = Route{http.MethodDelete, "/projects/{namespace}/feeds/{feed}/logs/{log_id}"}

	routeCreateInsight = Route{http.MethodPost, "/projects/{namespace}/insights"}
	routeFetchInsight  = Route{http.MethodGet, "/projects/{namespace}/insights/{insight_id}"}
	routeFetchInsights = Route{http.MethodGet, "/projects/{namespace}/insights"}
	routeEditInsight   = Route{http.MethodPatch, "/projects/{namespace}/insights/{insight_id}"}
	routeDeleteInsight = Route{http.MethodDelete, "/projects/{namespace}/insights/{insight_id}"}
)
