package store

import (
	"errors"
	"strings"

	"mediaboard/internal/models"

	"gorm.io/gorm"
)

type CommentStore struct {
	db *gorm.DB
}

func NewCommentStore(db *gorm.DB) *CommentStore {
	return &CommentStore{db: db}
}

// Add inserts a comment under a post. The parent reference is resolved
// lazily and scoped to the same post: when it does not resolve, the comment
// is demoted to top-level (nil parent, empty chain) rather than rejected.
func (s *CommentStore) Add(postID, authorID uint, text string, parentID *uint) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrInvalid
	}

	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		PostID:      post.ID,
		UserID:      authorID,
		Text:        text,
		AncestorIDs: []uint{},
	}

	if parentID != nil {
		var parent models.Comment
		err := s.db.Where("id = ? AND post_id = ?", *parentID, post.ID).
			First(&parent).Error
		if err == nil {
			comment.ParentID = &parent.ID
			comment.AncestorIDs = ancestorChain(parent)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ancestorChain is [parent, parent's ancestors...] truncated to
// models.MaxAncestors, so the head is always the immediate parent and the
// oldest lineage drops off first.
func ancestorChain(parent models.Comment) []uint {
	chain := make([]uint, 0, len(parent.AncestorIDs)+1)
	chain = append(chain, parent.ID)
	chain = append(chain, parent.AncestorIDs...)
	if len(chain) > models.MaxAncestors {
		chain = chain[:models.MaxAncestors]
	}
	return chain
}

// ThreadedComment is a comment plus its replies, newest-first.
type ThreadedComment struct {
	*models.Comment
	Comments []*ThreadedComment `json:"comments"`
}

// ThreadedPost is a post with its full reconstructed comment tree.
type ThreadedPost struct {
	*models.Post
	Comments []*ThreadedComment `json:"comments"`
}

// Threaded loads a post and rebuilds its comment tree from the flat rows in
// one pass: an id-to-node map first, then a single linking pass. A comment
// whose parent is missing from the loaded set surfaces at top level instead
// of being dropped.
func (s *CommentStore) Threaded(postID uint) (*ThreadedPost, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var comments []*models.Comment
	err := s.db.Where("post_id = ?", post.ID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	nodes := make(map[uint]*ThreadedComment, len(comments))
	ordered := make([]*ThreadedComment, len(comments))
	for i, c := range comments {
		node := &ThreadedComment{Comment: c, Comments: []*ThreadedComment{}}
		nodes[c.ID] = node
		ordered[i] = node
	}

	threaded := &ThreadedPost{Post: &post, Comments: []*ThreadedComment{}}
	for _, node := range ordered {
		if node.ParentID != nil {
			if parent, ok := nodes[*node.ParentID]; ok {
				parent.Comments = append(parent.Comments, node)
				continue
			}
		}
		threaded.Comments = append(threaded.Comments, node)
	}
	return threaded, nil
}

// Flatten returns the post and every comment at every depth as enrichment
// targets, so one batched user lookup covers the whole tree.
func (p *ThreadedPost) Flatten() []Authored {
	docs := make([]Authored, 0, 1)
	docs = append(docs, p.Post)
	var walk func(nodes []*ThreadedComment)
	walk = func(nodes []*ThreadedComment) {
		for _, node := range nodes {
			docs = append(docs, node.Comment)
			walk(node.Comments)
		}
	}
	walk(p.Comments)
	return docs
}
