package metrics

var Commands = NewCounter("commands_total", "Total external commands executed", []string{"binary", "outcome"})
var CommandDuration = NewHistogram("command_duration_seconds", "External command wall-clock duration", []string{"binary"})
var CommandTimeouts = NewCounter("command_timeouts_total", "Total external commands killed on timeout", []string{"binary"})

var ContainerOperations = NewCounter("container_operations_total", "Total container gateway operations", []string{"operation", "outcome"})
var ComposeOperations = NewCounter("compose_operations_total", "Total compose gateway operations", []string{"operation", "outcome"})

var SpeedtestRuns = NewCounter("speedtest_runs_total", "Total speed test runs", []string{"outcome"})
var ChromeLaunches = NewCounter("chrome_launches_total", "Total browser launches", []string{"outcome"})

var DeskpilotVersion = NewGauge("deskpilot_version", "Deskpilot version", []string{"version"})
