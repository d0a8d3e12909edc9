package tui

import "github.com/atotto/clipboard"

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll
