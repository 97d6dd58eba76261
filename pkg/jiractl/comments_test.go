//go:build unit

package jiractl

import (
	"context"
	"errors"
	"testing"

	"github.com/lerenn/jiractl/pkg/output"
	"github.com/lerenn/jiractl/pkg/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListComments(t *testing.T) {
	j, mockTracker := newTestJiraCtl(t)
	ctx := context.Background()

	mockTracker.EXPECT().Comments(ctx, "PRJ-1").Return([]tracker.Comment{
		{ID: "1", Updated: "2024-01-01", Author: "alice", Body: "A<br>B"},
		{ID: "2", Updated: "2024-01-02", Author: "bob", Body: "C"},
	}, nil)

	result, err := j.ListComments(ctx, ListCommentsParams{Issue: "PRJ-1"})
	require.NoError(t, err)
	assert.Equal(t, output.List(CommentColumns, [][]string{
		{"1", "2024-01-01", "alice", "A<br>B"},
		{"2", "2024-01-02", "bob", "C"},
	}), result)
}

func TestAddComment(t *testing.T) {
	t.Run("line breaks and no visibility", func(t *testing.T) {
		j, mockTracker := newTestJiraCtl(t)
		ctx := context.Background()

		mockTracker.EXPECT().AddComment(ctx, "ISSUE", "A\nB", (*tracker.Visibility)(nil)).
			Return(&tracker.Comment{ID: "3", Updated: "2024-01-03", Author: "alice", Body: "A\nB"}, nil)

		result, err := j.AddComment(ctx, AddCommentParams{Issue: "ISSUE", Text: "A<br>B"})
		require.NoError(t, err)
		assert.Equal(t, output.One(CommentColumns, []string{"3", "2024-01-03", "alice", "A\nB"}), result)
	})

	t.Run("with visibility", func(t *testing.T) {
		j, mockTracker := newTestJiraCtl(t)
		ctx := context.Background()
		visibility := &tracker.Visibility{Type: "role", Value: "Developers"}

		mockTracker.EXPECT().AddComment(ctx, "ISSUE", "text", visibility).
			Return(&tracker.Comment{ID: "4", Body: "text", Visibility: visibility}, nil)

		_, err := j.AddComment(ctx, AddCommentParams{Issue: "ISSUE", Text: "text", Visibility: visibility})
		assert.NoError(t, err)
	})

	t.Run("tracker error", func(t *testing.T) {
		j, mockTracker := newTestJiraCtl(t)
		ctx := context.Background()

		mockTracker.EXPECT().AddComment(ctx, "ISSUE", "text", gomock.Nil()).Return(nil, tracker.ErrForbidden)

		_, err := j.AddComment(ctx, AddCommentParams{Issue: "ISSUE", Text: "text"})
		assert.ErrorIs(t, err, tracker.ErrForbidden)
		assert.Contains(t, err.Error(), "add-comment")
	})
}

func TestEditComment(t *testing.T) {
	t.Run("fetches then updates", func(t *testing.T) {
		j, mockTracker := newTestJiraCtl(t)
		ctx := context.Background()

		gomock.InOrder(
			mockTracker.EXPECT().Comment(ctx, "PRJ-1", "10").Return(&tracker.Comment{ID: "10"}, nil),
			mockTracker.EXPECT().UpdateComment(ctx, "PRJ-1", "10", "line 1\nline 2", gomock.Nil()).Return(nil),
		)

		err := j.EditComment(ctx, EditCommentParams{Issue: "PRJ-1", ID: "10", Text: "line 1<br>line 2"})
		assert.NoError(t, err)
	})

	t.Run("missing comment is not updated", func(t *testing.T) {
		j, mockTracker := newTestJiraCtl(t)
		ctx := context.Background()

		mockTracker.EXPECT().Comment(ctx, "PRJ-1", "99").Return(nil, tracker.ErrNotFound)

		err := j.EditComment(ctx, EditCommentParams{Issue: "PRJ-1", ID: "99", Text: "x"})
		assert.ErrorIs(t, err, tracker.ErrNotFound)
	})
}

func TestShowComment(t *testing.T) {
	j, mockTracker := newTestJiraCtl(t)
	ctx := context.Background()

	mockTracker.EXPECT().Comment(ctx, "PRJ-1", "10").
		Return(&tracker.Comment{ID: "10", Updated: "2024-01-01", Author: "alice", Body: "A<br>B"}, nil)

	result, err := j.ShowComment(ctx, ShowCommentParams{Issue: "PRJ-1", ID: "10"})
	require.NoError(t, err)
	assert.True(t, result.Single)
	assert.Equal(t, [][]string{{"10", "2024-01-01", "alice", "A<br>B"}}, result.Rows)

	mockTracker.EXPECT().Comment(ctx, "PRJ-1", "11").Return(nil, errors.New("boom"))
	_, err = j.ShowComment(ctx, ShowCommentParams{Issue: "PRJ-1", ID: "11"})
	assert.Error(t, err)
}
