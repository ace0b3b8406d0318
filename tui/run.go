package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xyproto/vt"
)

const defaultTick = 50 * time.Millisecond

// parseKeys splits raw terminal input into key presses.
func parseKeys(raw string) []rune {
	if after, ok := strings.CutPrefix(raw, "c:"); ok {
		if n, err := strconv.Atoi(after); err == nil && n > 0 {
			return []rune{rune(n)}
		}
	}
	return []rune(raw)
}

// Run takes over the terminal until the user quits or ctx is done.
func (v *View) Run(ctx context.Context) error {
	tty, err := vt.NewTTY()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer tty.Close()

	vt.Init()
	defer func() {
		vt.Close()
		fmt.Print(vt.Stop())
		fmt.Println()
	}()

	c := vt.NewCanvas()
	c.HideCursor()
	tty.SetTimeout(20 * time.Millisecond)

	keys := make(chan rune, 32)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
			}
			raw := tty.CustomString()
			if raw == "" {
				continue
			}
			for _, key := range parseKeys(raw) {
				select {
				case keys <- key:
				default:
				}
			}
		}
	}()

	interval := v.Runner.Interval
	if interval <= 0 {
		interval = defaultTick
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	v.Draw(c)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case key := <-keys:
			if v.HandleKey(ctx, key) {
				return nil
			}
		case <-ticker.C:
			v.Tick(ctx)
		}
		v.Draw(c)
	}
}
