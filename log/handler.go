// Copyright 2025 The go-chainrand Authors
// This file is part of the go-chainrand library.
//
// The go-chainrand library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-chainrand library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-chainrand library. If not, see <http://www.gnu.org/licenses/>.

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strconv"
	"sync"
	"time"

	"github.com/holiman/uint256"
)

const (
	timeFormat  = "2006-01-02T15:04:05-0700"
	termTimeFmt = "01-02|15:04:05.000"
	termMsgJust = 40
)

// TerminalStringer is an analogous interface to the stdlib stringer, allowing
// own types to have custom shortened serialization formats when printed to the
// screen.
// TerminalStringer 类似于标准库的 Stringer 接口，允许自定义类型
// 在打印到终端时拥有更简短的序列化格式。
type TerminalStringer interface {
	TerminalString() string
}

type discardHandler struct{}

// DiscardHandler returns a no-op handler.
// DiscardHandler 返回一个无操作的处理器。
func DiscardHandler() slog.Handler {
	return &discardHandler{}
}

func (h *discardHandler) Handle(_ context.Context, r slog.Record) error {
	return nil
}

func (h *discardHandler) Enabled(_ context.Context, level slog.Level) bool {
	return false
}

func (h *discardHandler) WithGroup(name string) slog.Handler {
	panic("not implemented")
}

func (h *discardHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &discardHandler{}
}

// TerminalHandler formats log records for human readability on a terminal,
// with color-coded level output and a terse timestamp.
//
// [LEVEL] [TIME] MESSAGE key=value key=value ...
//
// Example:
//
// [DBUG] [May 16 20:58:45] rotated randomness seed epoch=3 round=17
//
// TerminalHandler 将日志记录格式化为便于人在终端阅读的形式，
// 级别带颜色编码，时间戳更简洁。该格式仅适用于交互式程序或开发期间使用。
type TerminalHandler struct {
	mu       sync.Mutex
	wr       io.Writer
	lvl      slog.Level
	useColor bool
	attrs    []slog.Attr
	buf      []byte
}

// NewTerminalHandler returns a handler which formats log records at all levels
// for terminal output.
func NewTerminalHandler(wr io.Writer, useColor bool) *TerminalHandler {
	return NewTerminalHandlerWithLevel(wr, levelMaxVerbosity, useColor)
}

// NewTerminalHandlerWithLevel returns the same handler as NewTerminalHandler
// but only outputs records at or above the specified verbosity level.
// NewTerminalHandlerWithLevel 与 NewTerminalHandler 相同，
// 但仅输出不低于指定详细级别的记录。
func NewTerminalHandlerWithLevel(wr io.Writer, lvl slog.Level, useColor bool) *TerminalHandler {
	return &TerminalHandler{
		wr:       wr,
		lvl:      lvl,
		useColor: useColor,
	}
}

func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	buf := h.format(h.buf, r)
	h.wr.Write(buf)
	h.buf = buf[:0]
	return nil
}

func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.lvl
}

func (h *TerminalHandler) WithGroup(name string) slog.Handler {
	panic("not implemented")
}

func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TerminalHandler{
		wr:       h.wr,
		lvl:      h.lvl,
		useColor: h.useColor,
		attrs:    append(h.attrs, attrs...),
	}
}

func (h *TerminalHandler) format(buf []byte, r slog.Record) []byte {
	var color = ""
	if h.useColor {
		switch r.Level {
		case LevelCrit:
			color = "\x1b[35m" // magenta
		case LevelError:
			color = "\x1b[31m" // red
		case LevelWarn:
			color = "\x1b[33m" // yellow
		case LevelInfo:
			color = "\x1b[32m" // green
		case LevelDebug:
			color = "\x1b[36m" // cyan
		case LevelTrace:
			color = "\x1b[34m" // blue
		}
	}
	if color != "" {
		buf = append(buf, color...)
		buf = append(buf, LevelAlignedString(r.Level)...)
		buf = append(buf, "\x1b[0m"...)
	} else {
		buf = append(buf, LevelAlignedString(r.Level)...)
	}
	buf = append(buf, '[')
	buf = r.Time.AppendFormat(buf, termTimeFmt)
	buf = append(buf, "] "...)
	buf = append(buf, r.Message...)

	// Pad the message so the attribute columns of consecutive records line up.
	if r.NumAttrs() > 0 || len(h.attrs) > 0 {
		for i := len(r.Message); i < termMsgJust; i++ {
			buf = append(buf, ' ')
		}
	}
	for _, attr := range h.attrs {
		buf = appendAttr(buf, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		buf = appendAttr(buf, attr)
		return true
	})
	return append(buf, '\n')
}

func appendAttr(buf []byte, attr slog.Attr) []byte {
	buf = append(buf, ' ')
	buf = append(buf, attr.Key...)
	buf = append(buf, '=')
	return append(buf, appendValue(nil, attr.Value)...)
}

// appendValue renders an attribute value, preferring terminal-friendly
// representations where the type offers one.
// appendValue 渲染属性值，若类型支持则优先使用终端友好的表示。
func appendValue(buf []byte, v slog.Value) []byte {
	if v.Kind() == slog.KindAny {
		switch t := v.Any().(type) {
		case *uint256.Int:
			if t == nil {
				return append(buf, "<nil>"...)
			}
			return append(buf, t.Dec()...)
		case error:
			return appendEscaped(buf, t.Error())
		case TerminalStringer:
			if reflect.ValueOf(t).Kind() == reflect.Pointer && reflect.ValueOf(t).IsNil() {
				return append(buf, "<nil>"...)
			}
			return appendEscaped(buf, t.TerminalString())
		case fmt.Stringer:
			if reflect.ValueOf(t).Kind() == reflect.Pointer && reflect.ValueOf(t).IsNil() {
				return append(buf, "<nil>"...)
			}
			return appendEscaped(buf, t.String())
		}
	}
	switch v.Kind() {
	case slog.KindString:
		return appendEscaped(buf, v.String())
	case slog.KindInt64:
		return strconv.AppendInt(buf, v.Int64(), 10)
	case slog.KindUint64:
		return strconv.AppendUint(buf, v.Uint64(), 10)
	case slog.KindBool:
		return strconv.AppendBool(buf, v.Bool())
	case slog.KindFloat64:
		return strconv.AppendFloat(buf, v.Float64(), 'f', 3, 64)
	case slog.KindTime:
		return v.Time().AppendFormat(buf, timeFormat)
	case slog.KindDuration:
		return append(buf, v.Duration().Round(time.Millisecond).String()...)
	default:
		return appendEscaped(buf, fmt.Sprintf("%+v", v.Any()))
	}
}

// appendEscaped quotes the string if it contains spaces or control characters.
func appendEscaped(buf []byte, s string) []byte {
	needsQuoting := false
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' {
			needsQuoting = true
			break
		}
	}
	if !needsQuoting {
		return append(buf, s...)
	}
	return strconv.AppendQuote(buf, s)
}
