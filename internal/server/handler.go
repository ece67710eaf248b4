package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/emrgen/tinytweet/internal/model"
	"github.com/emrgen/tinytweet/internal/service"
	"github.com/emrgen/tinytweet/internal/validate"
	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

type handler struct {
	accounts   *service.AccountService
	follows    *service.FollowService
	engagement *service.EngagementService
	tweets     *service.TweetService
	queries    *service.QueryService
	sessions   *sessionStore
}

// authenticate resolves the bearer token to the acting user and aborts
// with 401 when it cannot.
func (h *handler) authenticate(c *gin.Context) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	userID, ok := h.sessions.resolve(token)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

func (h *handler) actorID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

type registerRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Nickname    string `json:"nickname"`
	Password    string `json:"password"`
	DateOfBirth string `json:"date_of_birth"`
}

func (h *handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []validate.FieldError{
				{Field: "date_of_birth", Message: "must be formatted YYYY-MM-DD"},
			}})
			return
		}
		dob = &parsed
	}

	user, err := h.accounts.Register(c.Request.Context(), req.Username, req.Email, req.Nickname, req.Password, dob)
	if err != nil {
		h.renderError(c, err)
		return
	}

	token := h.sessions.create(user.ID)
	c.JSON(http.StatusCreated, gin.H{
		"username": user.Username,
		"nickname": user.Nickname,
		"token":    token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.renderError(c, err)
		return
	}

	token := h.sessions.create(user.ID)
	c.JSON(http.StatusOK, gin.H{
		"username": user.Username,
		"token":    token,
	})
}

func (h *handler) logout(c *gin.Context) {
	h.sessions.destroy(bearerToken(c.GetHeader("Authorization")))
	c.Status(http.StatusNoContent)
}

func (h *handler) listUsers(c *gin.Context) {
	usernames, err := h.accounts.ListUsernames(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"usernames": usernames})
}

func (h *handler) userPage(c *gin.Context) {
	page, err := h.queries.GetUserPage(c.Request.Context(), h.actorID(c), c.Param("username"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	tweets := make([]gin.H, 0, len(page.Tweets))
	for _, tweet := range page.Tweets {
		tweets = append(tweets, gin.H{
			"id":         tweet.ID,
			"content":    tweet.Content,
			"created_at": tweet.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"username":       page.User.Username,
		"nickname":       page.User.Nickname,
		"tweets":         tweets,
		"follower_count": page.FollowerCount,
		"followee_count": page.FolloweeCount,
		"is_followed":    page.IsFollowed,
	})
}

func (h *handler) follow(c *gin.Context) {
	result, err := h.follows.Follow(c.Request.Context(), h.actorID(c), c.Param("username"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) unfollow(c *gin.Context) {
	result, err := h.follows.Unfollow(c.Request.Context(), h.actorID(c), c.Param("username"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) followers(c *gin.Context) {
	users, err := h.queries.Followers(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"followers": usernames(users)})
}

func (h *handler) followees(c *gin.Context) {
	users, err := h.queries.Followees(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": usernames(users)})
}

type createTweetRequest struct {
	Content string `json:"content"`
}

func (h *handler) createTweet(c *gin.Context) {
	var req createTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tweet, err := h.tweets.CreateTweet(c.Request.Context(), h.actorID(c), req.Content)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         tweet.ID,
		"content":    tweet.Content,
		"created_at": tweet.CreatedAt,
	})
}

func (h *handler) listTweets(c *gin.Context) {
	tweets, err := h.tweets.ListTweets(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	items := make([]gin.H, 0, len(tweets))
	for _, tweet := range tweets {
		items = append(items, gin.H{
			"id":         tweet.ID,
			"user_id":    tweet.UserID,
			"content":    tweet.Content,
			"created_at": tweet.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"tweets": items})
}

func (h *handler) getTweet(c *gin.Context) {
	ctx := c.Request.Context()
	tweetID := c.Param("id")

	tweet, err := h.tweets.GetTweet(ctx, tweetID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	count, err := h.engagement.LikeCount(ctx, tweetID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	liked, err := h.engagement.HasLiked(ctx, h.actorID(c), tweetID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         tweet.ID,
		"user_id":    tweet.UserID,
		"content":    tweet.Content,
		"created_at": tweet.CreatedAt,
		"like_count": count,
		"liked":      liked,
	})
}

func (h *handler) deleteTweet(c *gin.Context) {
	if err := h.tweets.DeleteTweet(c.Request.Context(), h.actorID(c), c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) like(c *gin.Context) {
	result, err := h.engagement.Like(c.Request.Context(), h.actorID(c), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) unlike(c *gin.Context) {
	result, err := h.engagement.Unlike(c.Request.Context(), h.actorID(c), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) likers(c *gin.Context) {
	users, err := h.queries.Likers(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"likers":     usernames(users),
		"like_count": len(users),
	})
}

// renderError maps the service error taxonomy onto HTTP statuses.
func (h *handler) renderError(c *gin.Context, err error) {
	var fieldErrs validate.Errors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}

	switch {
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrTweetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotTweetOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrUserInactive):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func usernames(users []*model.User) []string {
	names := make([]string, 0, len(users))
	for _, user := range users {
		names = append(names, user.Username)
	}
	return names
}
