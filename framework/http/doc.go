// Package http provides request and response helpers for handlers.
//
// # Request
//
//	req := gohttp.NewRequest(r)
//
//	// Input retrieval (JSON object body, then query string + POST body)
//	value := req.Input("value", "default")
//	on    := req.Bool("checked")     // "on", "true", "1", "yes"
//	ok    := req.Has("firstName")    // present, even if empty
//
//	// Route params (requires Chi router)
//	id := req.RouteParam("control")
//
//	// Headers, cookies and content negotiation
//	sid := req.Cookie("registration_session")
//	req.IsJSON()   // Accept: application/json OR Content-Type: application/json
//
// # Response
//
//	res := gohttp.NewResponse(w)
//
//	res.JSON(200, data)                 // raw JSON with status
//	res.Success(data)                   // 200 {"data": ...}
//	res.Error(409, "blocked")           // {"message": "blocked"}
//	res.NotFound()                      // 404 {"message": "Not found."}
//	res.ValidationError(errs, extra)    // 422 {"errors": {"slot": "msg"}, ...extra}
//	res.RedirectTo("/")                 // 303
//	res.SetCookie(name, value, ttl, secure)
//
// # ViewEngine
//
//	engine := gohttp.NewViewEngine(views.FS, ".html")
//	engine.View(w, "registration", data)
package http
