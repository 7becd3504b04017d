// Package timezone resolves the application timezone from APP_TIMEZONE once at import time
// and exposes helpers that render times in it. Use IANA names such as "UTC" or "Asia/Jakarta".
package timezone
