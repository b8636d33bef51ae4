package http

import (
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"personal-site/internal/auth"
	"personal-site/internal/domain"
	"personal-site/internal/service"
)

const sessionCookie = "site_session"

const identityKey = "identity"

// Handler wires HTTP routes to domain services.
type Handler struct {
	users    service.UserService
	comments service.CommentService
	sessions *auth.Sessions
	logger   *logrus.Logger
}

func NewHandler(users service.UserService, comments service.CommentService, sessions *auth.Sessions, logger *logrus.Logger) *Handler {
	return &Handler{
		users:    users,
		comments: comments,
		sessions: sessions,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))
	router.Use(h.resolveSession())

	router.GET("/", h.staticPage("about.html"))
	router.GET("/skills/", h.staticPage("skills.html"))
	router.GET("/projects/", h.staticPage("projects.html"))
	router.GET("/awards/", h.staticPage("awards.html"))

	router.GET("/comment/", h.listComments)
	router.POST("/comment/", h.postComment)

	router.GET("/login/", h.loginForm)
	router.POST("/login/", h.login)
	router.GET("/logout/", h.logout)
}

// resolveSession populates the caller identity for every request. A missing
// cookie, a bad token, or a user that no longer exists all resolve to
// Anonymous rather than an error.
func (h *Handler) resolveSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, domain.Anonymous)

		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		username, err := h.sessions.Verify(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := h.users.Resolve(c.Request.Context(), username)
		if err != nil {
			c.Next()
			return
		}

		c.Set(identityKey, domain.IdentityFor(user))
		c.Next()
	}
}

func identity(c *gin.Context) domain.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(domain.Identity); ok {
			return id
		}
	}
	return domain.Anonymous
}

func (h *Handler) staticPage(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, gin.H{
			"Identity": identity(c),
		})
	}
}

func (h *Handler) listComments(c *gin.Context) {
	comments, err := h.comments.List(c.Request.Context())
	if err != nil {
		h.logger.Warnf("list comments: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "comment.html", gin.H{
		"Identity": identity(c),
		"Comments": comments,
	})
}

func (h *Handler) postComment(c *gin.Context) {
	id := identity(c)
	if !id.IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/comment/")
		return
	}

	contents, ok := c.GetPostForm("contents")
	if !ok {
		// required form field; absence fails the request outright
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	if _, err := h.comments.Append(c.Request.Context(), contents, id); err != nil {
		h.logger.Warnf("append comment: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusSeeOther, "/comment/")
}

func (h *Handler) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Error": false})
}

func (h *Handler) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.users.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			h.logger.Warnf("login: %v", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		// generic failure: unknown user and wrong password look identical
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": true})
		return
	}

	token, err := h.sessions.Issue(user.Username)
	if err != nil {
		h.logger.Warnf("issue session: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.SetCookie(sessionCookie, token, int(h.sessions.TTL()/time.Second), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/comment/")
}

func (h *Handler) logout(c *gin.Context) {
	if !identity(c).IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/login/")
		return
	}

	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login/")
}
