package config

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

// NetAddress holds structured network address data for host and port.
// It implements the kingpin.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the sub-command and all configuration flags from args
// (the command line without the program name).
//
// Commands:
//
//	tui   interactive terminal dashboard (default)
//	serve read-only dashboard HTTP API
//	dump  print the enriched configuration once
//
// Flags:
//
//	-a/--lb-address       load balancer control API base URL
//	--request-timeout     timeout of a single fetch (e.g. "5s")
//	-l/--listen           dashboard API address in format [host]:[port]
//	--server-timeout      inbound request timeout of the dashboard API
//	--refresh             TUI auto refresh interval, 0 disables it
//	--log-level           zerolog level name
//	-c/--config           JSON or YAML file with configs
//	-o/--format           dump output format: table, json or yaml
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg           StructuredConfig
		listenAddress NetAddress
	)

	app := kingpin.New("lbdash", "Load balancer configuration dashboard.")
	app.Terminate(nil)
	app.ErrorWriter(io.Discard)

	app.Flag("lb-address", "Load balancer control API base URL.").Short('a').StringVar(&cfg.Adapter.HTTPAddress)
	app.Flag("request-timeout", "Timeout of a single fetch (e.g. 5s).").DurationVar(&cfg.Adapter.RequestTimeout)
	app.Flag("listen", "Dashboard API address host:port.").Short('l').SetValue(&listenAddress)
	app.Flag("server-timeout", "Inbound request timeout (e.g. 30s).").DurationVar(&cfg.Server.RequestTimeout)
	app.Flag("refresh", "Auto refresh interval of the TUI, 0 disables it.").DurationVar(&cfg.Workers.RefreshInterval)
	app.Flag("log-level", "Log level.").StringVar(&cfg.Log.Level)
	app.Flag("config", "JSON or YAML config file path.").Short('c').StringVar(&cfg.JSONFilePath)

	app.Command(CommandTUI, "Interactive terminal dashboard.").Default()
	app.Command(CommandServe, "Serve the dashboard HTTP API.")
	dump := app.Command(CommandDump, "Print the enriched configuration and exit.")
	dump.Flag("format", "Output format.").Short('o').EnumVar(&cfg.Report.Format, FormatTable, FormatJSON, FormatYAML)

	command, err := app.Parse(args)
	if err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Command = command
	cfg.Server.HTTPAddress = listenAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost" or empty, and returns an error if
// the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number is an integer between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
