package handlers

import (
	"net/http"

	"mediaboard/internal/identity"
	"mediaboard/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionUserID = "user_id"

type AuthHandler struct {
	users    *store.UserStore
	verifier *identity.Verifier
	oauth    *identity.OAuthFlow
}

func NewAuthHandler(users *store.UserStore, verifier *identity.Verifier, oauth *identity.OAuthFlow) *AuthHandler {
	return &AuthHandler{users: users, verifier: verifier, oauth: oauth}
}

// Login exchanges a client-supplied Google id_token for a session. Any
// provider failure, including an unverified email, is a 500 with no detail.
func (h *AuthHandler) Login(c *gin.Context) {
	var body struct {
		IDToken string `json:"id_token" form:"id_token"`
	}
	if err := c.ShouldBind(&body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}

	claims, err := h.verifier.Verify(c.Request.Context(), body.IDToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}

	h.establishSession(c, claims)
}

// establishSession maps verified claims to a user record and stores its id
// in the session. Shared by the id_token path and the OAuth redirect flow.
func (h *AuthHandler) establishSession(c *gin.Context, claims *identity.Claims) {
	user, err := h.users.Resolve(claims)
	if err != nil {
		abortError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserID, user.ID)
	if err := session.Save(); err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"userId": user.ID})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(sessionUserID)
	if err := session.Save(); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// GoogleLogin starts the server-side authorization-code flow.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state, err := identity.StateToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}

	session := sessions.Default(c)
	session.Set("oauth_state", state)
	session.Save()

	c.Redirect(http.StatusTemporaryRedirect, h.oauth.AuthURL(state))
}

// GoogleCallback finishes the redirect flow and funnels into the same
// identity resolution as Login.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	session := sessions.Default(c)
	savedState := session.Get("oauth_state")
	session.Delete("oauth_state")
	session.Save()

	if savedState == nil || c.Query("state") != savedState.(string) {
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}

	claims, err := h.oauth.Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}

	user, err := h.users.Resolve(claims)
	if err != nil {
		abortError(c, err)
		return
	}

	session.Set(sessionUserID, user.ID)
	if err := session.Save(); err != nil {
		abortError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
