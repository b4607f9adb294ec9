package model

import (
	"time"
)

const (
	DefaultYouTubeURL    = "https://www.youtube.com"
	DefaultUserAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	DefaultCheckTimeout  = 10 * time.Second
	DefaultMaxBodySize   = 4 << 20
	DefaultLanguage      = LanguageTurkish
	DefaultConcurrency   = 4
	DefaultLogMaxSize    = 50 // megabytes
	DefaultLogMaxAge     = 30 // days
	DefaultLogMaxBackups = 7
)
