package main

// Flag names for viper binding.
const (
	FlagVerbose = "verbose"
	FlagConfig  = "config"
	FlagLogFile = "log-file"
	FlagState   = "state-file"
	FlagAudit   = "audit-file"
	FlagBackend = "backend"

	FlagTUI = "tui"

	FlagFollow = "follow"
	FlagCount  = "count"
	FlagJSON   = "json"
	FlagWatch  = "watch"

	FlagAddr = "addr"

	FlagDryRun = "dry-run"
	FlagForce  = "force"
)
