package handlers

import (
	"net/http"

	"mediaboard/internal/middleware"
	"mediaboard/internal/store"
	"mediaboard/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	posts    *store.PostStore
	comments *store.CommentStore
	users    *store.UserStore
}

func NewPostHandler(posts *store.PostStore, comments *store.CommentStore, users *store.UserStore) *PostHandler {
	return &PostHandler{posts: posts, comments: comments, users: users}
}

// List returns enriched posts newest-first, optionally filtered to one
// author via ?userFilter=<userId>.
func (h *PostHandler) List(c *gin.Context) {
	var userFilter *uint
	if raw := c.Query("userFilter"); raw != "" {
		id, err := utils.ParseID(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{})
			return
		}
		userFilter = &id
	}
	h.renderList(c, userFilter)
}

// renderList is the shared read-back for the list endpoint and every post
// mutation: the enriched full list, newest-first.
func (h *PostHandler) renderList(c *gin.Context, userFilter *uint) {
	posts, err := h.posts.List(userFilter)
	if err != nil {
		abortError(c, err)
		return
	}

	docs := make([]store.Authored, len(posts))
	for i, p := range posts {
		docs[i] = p
	}
	if err := h.users.AttachPublicUsers(docs); err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Detail returns one post with its nested comment tree, every node enriched
// with its author's public projection and rendered markdown.
func (h *PostHandler) Detail(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}
	h.renderThreaded(c, id)
}

func (h *PostHandler) renderThreaded(c *gin.Context, postID uint) {
	threaded, err := h.comments.Threaded(postID)
	if err != nil {
		abortError(c, err)
		return
	}

	// Enrichment runs after the primary read, over the flattened tree, as a
	// single batched lookup.
	if err := h.users.AttachPublicUsers(threaded.Flatten()); err != nil {
		abortError(c, err)
		return
	}

	threaded.TextHTML = utils.RenderMarkdown(threaded.Text)
	var render func(nodes []*store.ThreadedComment)
	render = func(nodes []*store.ThreadedComment) {
		for _, node := range nodes {
			node.TextHTML = utils.RenderMarkdown(node.Text)
			render(node.Comments)
		}
	}
	render(threaded.Comments)

	c.JSON(http.StatusOK, threaded)
}

func (h *PostHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var body store.CreatePost
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}

	if _, err := h.posts.Create(user.ID, body); err != nil {
		abortError(c, err)
		return
	}
	h.renderList(c, nil)
}

func (h *PostHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{})
		return
	}

	var body store.CreatePost
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}

	if err := h.posts.Update(id, user.ID, body); err != nil {
		abortError(c, err)
		return
	}
	h.renderList(c, nil)
}

func (h *PostHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{})
		return
	}

	if err := h.posts.Delete(id, user.ID); err != nil {
		abortError(c, err)
		return
	}
	h.renderList(c, nil)
}

// CreateComment threads a comment onto a post and responds with the post
// re-fetched with its updated tree.
func (h *PostHandler) CreateComment(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var body struct {
		PostID   uint   `json:"postId"`
		Text     string `json:"text"`
		ParentID *uint  `json:"parentCommentId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}

	comment, err := h.comments.Add(body.PostID, user.ID, body.Text, body.ParentID)
	if err != nil {
		abortError(c, err)
		return
	}
	h.renderThreaded(c, comment.PostID)
}
