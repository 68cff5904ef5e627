package routes

import (
	routesAuth "github.com/campusmatch/backend/internal/routes/auth"
	routesChat "github.com/campusmatch/backend/internal/routes/chat"
	routesMatch "github.com/campusmatch/backend/internal/routes/match"
	routesProfile "github.com/campusmatch/backend/internal/routes/profile"
	authUseCase "github.com/campusmatch/backend/internal/usecase/auth"
	"github.com/campusmatch/backend/internal/usecase/chat"
	"github.com/campusmatch/backend/internal/usecase/match"
	"github.com/campusmatch/backend/internal/usecase/profile"
	"github.com/labstack/echo"
)

// InitRoutes registers the JSON API consumed by the front-end. Identity
// is the plain user id carried in each request; there are no sessions.
func InitRoutes(
	e *echo.Echo,
	authCase authUseCase.IAuthUseCase,
	profileCase profile.IProfileUseCase,
	matchCase match.IMatchUseCase,
	chatCase chat.IChatUseCase,
	uploadDir string,
) {
	e.POST("/signup", func(c echo.Context) error {
		return routesAuth.SignupHandler(c, authCase)
	})
	e.POST("/login", func(c echo.Context) error {
		return routesAuth.LoginHandler(c, authCase)
	})

	e.GET("/users", func(c echo.Context) error {
		return routesProfile.UsersHandler(c, profileCase)
	})
	e.GET("/profile/:userId", func(c echo.Context) error {
		return routesProfile.GetProfileHandler(c, profileCase)
	})
	e.POST("/update_profile", func(c echo.Context) error {
		return routesProfile.UpdateProfileHandler(c, profileCase)
	})

	e.POST("/like", func(c echo.Context) error {
		return routesMatch.LikeHandler(c, matchCase)
	})
	e.GET("/matches", func(c echo.Context) error {
		return routesMatch.MatchesHandler(c, matchCase)
	})

	e.GET("/messages/:matchId", func(c echo.Context) error {
		return routesChat.MessagesHandler(c, chatCase)
	})
	e.POST("/send_message", func(c echo.Context) error {
		return routesChat.SendMessageHandler(c, chatCase)
	})

	if uploadDir != "" {
		e.Static("/static/uploads", uploadDir)
	}
}
