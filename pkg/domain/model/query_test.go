package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/tuser/pkg/domain/model"
)

func TestBuildLookupQuery(t *testing.T) {
	t.Run("Mixed IDs and logins", func(t *testing.T) {
		query, err := model.BuildLookupQuery("123, foo 456,,bar")
		gt.NoError(t, err).Required()
		gt.Equal(t, []string{"123", "456"}, query.IDs)
		gt.Equal(t, []string{"foo", "bar"}, query.Logins)
	})

	t.Run("Single login", func(t *testing.T) {
		query, err := model.BuildLookupQuery("ninja")
		gt.NoError(t, err).Required()
		gt.Equal(t, 0, len(query.IDs))
		gt.Equal(t, []string{"ninja"}, query.Logins)
	})

	t.Run("Interior commas split tokens", func(t *testing.T) {
		query, err := model.BuildLookupQuery("456,,bar foo,7")
		gt.NoError(t, err).Required()
		gt.Equal(t, []string{"456", "7"}, query.IDs)
		gt.Equal(t, []string{"bar", "foo"}, query.Logins)
	})

	t.Run("Comma-wrapped token", func(t *testing.T) {
		query, err := model.BuildLookupQuery(",ninja,")
		gt.NoError(t, err).Required()
		gt.Equal(t, []string{"ninja"}, query.Logins)
	})

	t.Run("Leading zeros kept verbatim", func(t *testing.T) {
		query, err := model.BuildLookupQuery("0042")
		gt.NoError(t, err).Required()
		gt.Equal(t, []string{"0042"}, query.IDs)
	})

	t.Run("Duplicates are not removed", func(t *testing.T) {
		query, err := model.BuildLookupQuery("foo foo 7 7")
		gt.NoError(t, err).Required()
		gt.Equal(t, []string{"7", "7"}, query.IDs)
		gt.Equal(t, []string{"foo", "foo"}, query.Logins)
	})

	t.Run("IDs are bounded to 32 bits", func(t *testing.T) {
		query, err := model.BuildLookupQuery("4294967295 4294967296")
		gt.NoError(t, err).Required()
		gt.Equal(t, []string{"4294967295"}, query.IDs)
		gt.Equal(t, []string{"4294967296"}, query.Logins)
	})

	t.Run("Negative number is a login", func(t *testing.T) {
		query, err := model.BuildLookupQuery("-5")
		gt.NoError(t, err).Required()
		gt.Equal(t, []string{"-5"}, query.Logins)
	})

	t.Run("Empty text", func(t *testing.T) {
		_, err := model.BuildLookupQuery("")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrNoIdentifiers))
	})

	t.Run("Whitespace only", func(t *testing.T) {
		_, err := model.BuildLookupQuery("   \t  ")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrNoIdentifiers))
	})

	t.Run("Commas only", func(t *testing.T) {
		_, err := model.BuildLookupQuery(", ,, ,")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrNoIdentifiers))
	})
}

func TestLookupQueryValues(t *testing.T) {
	query, err := model.BuildLookupQuery("ninja 19571641 shroud")
	gt.NoError(t, err).Required()

	// IDs are rendered before logins
	gt.Equal(t, "id=19571641&login=ninja&login=shroud", query.Values().Encode())
	gt.Equal(t, 3, query.Size())
}
