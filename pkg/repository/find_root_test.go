//go:build unit

package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	fsmocks "github.com/barewt/bwt/pkg/fs/mocks"
)

func TestLocator_FindRoot_DirectHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	locator := NewLocator(mockFS)

	mockFS.EXPECT().Canonicalize("/repos/github.com/acme/widgets").
		Return("/repos/github.com/acme/widgets", nil)
	mockFS.EXPECT().IsDir("/repos/github.com/acme/widgets/.bare").Return(true, nil)

	root, err := locator.FindRoot("/repos/github.com/acme/widgets")
	assert.NoError(t, err)
	assert.Equal(t, "/repos/github.com/acme/widgets", root)
}

func TestLocator_FindRoot_Ascends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	locator := NewLocator(mockFS)

	start := "/repos/github.com/acme/widgets/feature-login/src"
	mockFS.EXPECT().Canonicalize(start).Return(start, nil)
	mockFS.EXPECT().IsDir(start + "/.bare").Return(false, nil)
	mockFS.EXPECT().IsDir("/repos/github.com/acme/widgets/feature-login/.bare").Return(false, assert.AnError)
	mockFS.EXPECT().IsDir("/repos/github.com/acme/widgets/.bare").Return(true, nil)

	root, err := locator.FindRoot(start)
	assert.NoError(t, err)
	assert.Equal(t, "/repos/github.com/acme/widgets", root)
}

func TestLocator_FindRoot_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	locator := NewLocator(mockFS)

	mockFS.EXPECT().Canonicalize("/a/b").Return("/a/b", nil)
	mockFS.EXPECT().IsDir("/a/b/.bare").Return(false, nil)
	mockFS.EXPECT().IsDir("/a/.bare").Return(false, nil)
	mockFS.EXPECT().IsDir("/.bare").Return(false, nil)

	_, err := locator.FindRoot("/a/b")
	assert.ErrorIs(t, err, ErrRepositoryRootNotFound)
}

func TestLocator_FindRoot_CanonicalizeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	locator := NewLocator(mockFS)

	mockFS.EXPECT().Canonicalize("does-not-exist").Return("", errors.New("no such file"))

	_, err := locator.FindRoot("does-not-exist")
	assert.Error(t, err)
}
