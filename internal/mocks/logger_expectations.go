package mocks

import "github.com/stretchr/testify/mock"

const maxLoggedFields = 8

// AllowAnyLogging registers optional expectations on every level for calls
// carrying up to maxLoggedFields fields.
func AllowAnyLogging(l *Logger) *Logger {
	for arity := 0; arity <= maxLoggedFields; arity++ {
		fields := make([]interface{}, arity)
		for i := range fields {
			fields[i] = mock.Anything
		}
		l.EXPECT().Debug(mock.Anything, fields...).Maybe()
		l.EXPECT().Info(mock.Anything, fields...).Maybe()
		l.EXPECT().Warn(mock.Anything, fields...).Maybe()
		l.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
	return l
}

// NewNopLogger returns a Logger mock that accepts any log call.
func NewNopLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *Logger {
	return AllowAnyLogging(NewLogger(t))
}
