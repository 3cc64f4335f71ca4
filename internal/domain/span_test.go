package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	t.Run("starting a span ends the previous one", func(t *testing.T) {
		profile, endProfile := NewProfile()
		first, _ := profile.StartNewSpan("load")
		require.Nil(t, first.Elapsed)

		profile.StartNewSpan("write")
		require.NotNil(t, first.Elapsed)

		endProfile()
		spans := profile.Spans()
		require.Len(t, spans, 2)
		require.Equal(t, "write", spans[1].Name)
		require.NotNil(t, spans[1].Elapsed)
		require.NotNil(t, profile.TotalMs)

		fields := profile.LogFields()
		require.Len(t, fields, 4)
		require.Equal(t, "loadMs", fields[0])
	})

	t.Run("nil profile records nothing", func(t *testing.T) {
		profile := ProfileFromContext(context.Background())
		require.Nil(t, profile)

		span, end := profile.StartNewSpan("anything")
		end()
		require.NotNil(t, span.Elapsed)
		profile.End()
		require.Nil(t, profile.Spans())
		require.Nil(t, profile.LogFields())
	})

	t.Run("travels in the context", func(t *testing.T) {
		profile, _ := NewProfile()
		ctx := WithProfile(context.Background(), profile)
		require.Same(t, profile, ProfileFromContext(ctx))
	})
}
