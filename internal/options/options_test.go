package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// readerConfig stands in for the settings a wire.Reader or snbt
// formatter actually carries (dialect, indent width, strictness).
type readerConfig struct {
	IndentWidth int
	RootName    string
	Strict      bool
	LastCall    string
}

func (rc *readerConfig) SetIndentWidth(n int) error {
	if n < 0 {
		return errors.New("indent width cannot be negative")
	}
	rc.IndentWidth = n
	rc.LastCall = "SetIndentWidth"

	return nil
}

func (rc *readerConfig) SetRootName(name string) {
	rc.RootName = name
	rc.LastCall = "SetRootName"
}

func (rc *readerConfig) SetStrict(strict bool) {
	rc.Strict = strict
	rc.LastCall = "SetStrict"
}

func TestOptionNew(t *testing.T) {
	cfg := &readerConfig{}

	t.Run("creates option that can return error", func(t *testing.T) {
		opt := New(func(c *readerConfig) error {
			return c.SetIndentWidth(2)
		})

		err := opt.apply(cfg)
		require.NoError(t, err)
		require.Equal(t, 2, cfg.IndentWidth)
		require.Equal(t, "SetIndentWidth", cfg.LastCall)
	})

	t.Run("propagates errors from option function", func(t *testing.T) {
		opt := New(func(c *readerConfig) error {
			return c.SetIndentWidth(-1)
		})

		err := opt.apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "cannot be negative")
	})
}

func TestOptionNoError(t *testing.T) {
	cfg := &readerConfig{}

	t.Run("creates option from function without error", func(t *testing.T) {
		opt := NoError(func(c *readerConfig) {
			c.SetRootName("root")
		})

		err := opt.apply(cfg)
		require.NoError(t, err)
		require.Equal(t, "root", cfg.RootName)
		require.Equal(t, "SetRootName", cfg.LastCall)
	})

	t.Run("works with boolean setter", func(t *testing.T) {
		opt := NoError(func(c *readerConfig) {
			c.SetStrict(true)
		})

		err := opt.apply(cfg)
		require.NoError(t, err)
		require.True(t, cfg.Strict)
		require.Equal(t, "SetStrict", cfg.LastCall)
	})
}

func TestOptionApply(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := &readerConfig{}
		opts := []Option[*readerConfig]{
			New(func(c *readerConfig) error { return c.SetIndentWidth(4) }),
			NoError(func(c *readerConfig) { c.SetRootName("level") }),
			NoError(func(c *readerConfig) { c.SetStrict(true) }),
		}

		err := Apply(cfg, opts...)
		require.NoError(t, err)
		require.Equal(t, 4, cfg.IndentWidth)
		require.Equal(t, "level", cfg.RootName)
		require.True(t, cfg.Strict)
		require.Equal(t, "SetStrict", cfg.LastCall)
	})

	t.Run("stops at first error and returns it", func(t *testing.T) {
		cfg := &readerConfig{}
		opts := []Option[*readerConfig]{
			New(func(c *readerConfig) error { return c.SetIndentWidth(2) }),
			New(func(c *readerConfig) error { return c.SetIndentWidth(-1) }),
			NoError(func(c *readerConfig) { c.SetRootName("should not be set") }),
		}

		err := Apply(cfg, opts...)
		require.Error(t, err)
		require.Contains(t, err.Error(), "cannot be negative")
		require.Equal(t, 2, cfg.IndentWidth)
		require.Empty(t, cfg.RootName)
		require.Equal(t, "SetIndentWidth", cfg.LastCall)
	})

	t.Run("works with empty options slice", func(t *testing.T) {
		cfg := &readerConfig{}
		err := Apply(cfg)
		require.NoError(t, err)
		require.Zero(t, cfg.IndentWidth)
		require.Empty(t, cfg.RootName)
		require.False(t, cfg.Strict)
	})
}

func TestOptionIntegration(t *testing.T) {
	withIndentWidth := func(n int) Option[*readerConfig] {
		return New(func(c *readerConfig) error { return c.SetIndentWidth(n) })
	}
	withRootName := func(name string) Option[*readerConfig] {
		return NoError(func(c *readerConfig) { c.SetRootName(name) })
	}
	withStrict := func(strict bool) Option[*readerConfig] {
		return NoError(func(c *readerConfig) { c.SetStrict(strict) })
	}

	t.Run("works with helper functions", func(t *testing.T) {
		cfg := &readerConfig{}
		err := Apply(cfg,
			withIndentWidth(2),
			withRootName("integration"),
			withStrict(true),
		)

		require.NoError(t, err)
		require.Equal(t, 2, cfg.IndentWidth)
		require.Equal(t, "integration", cfg.RootName)
		require.True(t, cfg.Strict)
	})
}

func TestOptionGenericsWithPrimitiveType(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 42 })

	err := opt.apply(&n)
	require.NoError(t, err)
	require.Equal(t, 42, n)
}
