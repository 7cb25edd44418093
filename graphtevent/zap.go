// Copyright (c) 2026 The Grapht Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package graphtevent

import "go.uber.org/zap"

// ZapLogger is a Logger that logs events to a *zap.Logger.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the wrapped zap.Logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *ResolveStarted:
		l.Logger.Debug("resolve started",
			zap.String("desire", e.Desire),
			zap.String("caller", e.Caller),
		)
	case *ResolveSucceeded:
		l.Logger.Info("resolve succeeded",
			zap.String("desire", e.Desire),
			zap.String("satisfaction", e.Satisfaction),
		)
	case *ResolveFailed:
		l.Logger.Error("resolve failed",
			zap.String("desire", e.Desire),
			zap.Error(e.Err),
		)
	case *BindingApplied:
		l.Logger.Debug("binding applied",
			zap.String("from", e.From),
			zap.String("to", e.To),
			zap.Bool("terminates", e.Terminates),
			zap.String("via", e.Via),
		)
	case *NodeCreated:
		l.Logger.Debug("node created", zap.String("satisfaction", e.Satisfaction))
	case *NodeReused:
		l.Logger.Debug("node reused", zap.String("satisfaction", e.Satisfaction))
	case *SatisfactionSkipped:
		l.Logger.Debug("satisfaction skipped",
			zap.String("satisfaction", e.Satisfaction),
			zap.Error(e.Reason),
		)
	case *NullSatisfactionUsed:
		l.Logger.Debug("null satisfaction used", zap.String("desire", e.Desire))
	}
}
