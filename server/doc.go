// Package server renders check failures at a Gin HTTP boundary.
//
// Standard failures become their AppError status and body. Non-retryable
// failures are client faults and are rendered the same way by kind. Anything
// else, invariant violations included, is logged and hidden behind a 500.
//
//	r := gin.New()
//	r.Use(server.Recovery(log))
//	r.POST("/users", func(c *gin.Context) {
//	    name, err := validation.NotBlank(c.PostForm("name"), validation.Msg("name is required"))
//	    if err != nil {
//	        server.RespondWithError(c, log, err)
//	        return
//	    }
//	    server.RespondCreated(c, name)
//	})
package server
