package api

// routeHandlers groups every handler the router mounts.
type routeHandlers struct {
	pageHandler    pageHandler
	blogHandler    blogHandler
	contactHandler contactHandler
	authHandler    authHandler
	adminHandler   adminHandler
}

// initializeHandlers creates and returns all handlers organized in a
// routeHandlers struct
func initializeHandlers(deps routerDeps, renderer *renderer) *routeHandlers {
	return &routeHandlers{
		pageHandler:    newPageHandler(renderer),
		blogHandler:    newBlogHandler(renderer, deps.posts),
		contactHandler: newContactHandler(renderer, deps.messages, deps.mailer, deps.cfg.MailTo),
		authHandler:    newAuthHandler(renderer, deps.users, deps.sessions),
		adminHandler:   newAdminHandler(renderer, deps.posts, deps.messages),
	}
}
