package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"
)

const (
	environmentVariableTimeout   = "FETCH_TIMEOUT"
	environmentVariableUserAgent = "FETCH_USER_AGENT"
	environmentVariableFail      = "FETCH_FAIL"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "fetch-happen"
)

type (
	// mainFlags are the options of the single request that is made.
	mainFlags struct {
		method    string
		headers   headerFlags
		data      string
		json      bool
		mode      string
		fail      bool
		include   bool
		verbose   bool
		timeout   time.Duration
		userAgent string
		url       string
	}

	// headerFlags collects repeated "Key: Value" header flags.
	headerFlags map[string]string
)

// usage prints how to run the command to the flagset's output.
func usage(fs *flag.FlagSet) {
	envVars := []string{
		environmentVariableTimeout,
		environmentVariableUserAgent,
		environmentVariableFail,
	}
	fmt.Fprintf(fs.Output(), "Makes a HTTP request and writes the response body to standard output\n")
	fmt.Fprintf(fs.Output(), "Reads environment variables when possible: [%s]\n", strings.Join(envVars, ","))
	fmt.Fprintf(fs.Output(), "Usage of %s: [flags] url\n", fs.Name())
	fs.PrintDefaults()
}

// newFlagSet creates a flagSet that populates the specified mainFlags.
func (m *mainFlags) newFlagSet(osLookupEnvFunc func(string) (string, bool)) *flag.FlagSet {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	fs.Usage = func() {
		usage(fs) // [lazy evaluation]
	}
	envValue := func(key string) string {
		if envValue, ok := osLookupEnvFunc(key); ok {
			return envValue
		}
		return ""
	}
	envValueDuration := func(key string, defaultValue time.Duration) time.Duration {
		v1 := envValue(key)
		v2, err := time.ParseDuration(v1)
		if err != nil {
			return defaultValue
		}
		return v2
	}
	envValueOrDefault := func(key, defaultValue string) string {
		if v := envValue(key); len(v) != 0 {
			return v
		}
		return defaultValue
	}
	envPresent := func(key string) bool {
		_, ok := osLookupEnvFunc(key)
		return ok
	}
	m.headers = make(headerFlags)
	fs.StringVar(&m.method, "X", "", "The HTTP method.  Defaults to GET, or POST if there is data.")
	fs.StringVar(&m.method, "method", "", "Same as -X.")
	fs.Var(m.headers, "H", "A request header as \"Key: Value\".  Can be repeated.")
	fs.StringVar(&m.data, "d", "", "The request body.")
	fs.BoolVar(&m.json, "json", false, "Sends the data as json, failing if it is not valid json.")
	fs.StringVar(&m.mode, "mode", "cors", "The cross-origin mode: cors, no-cors, or same-origin.  Only browsers use it.")
	fs.BoolVar(&m.fail, "fail", envPresent(environmentVariableFail), "Fails without writing the body if the response status is not 2xx.")
	fs.BoolVar(&m.include, "i", false, "Writes the response status before the body.")
	fs.BoolVar(&m.verbose, "v", false, "Logs the request and response status.")
	fs.DurationVar(&m.timeout, "timeout", envValueDuration(environmentVariableTimeout, defaultTimeout), "The amount of time the request can take.")
	fs.StringVar(&m.userAgent, "user-agent", envValueOrDefault(environmentVariableUserAgent, defaultUserAgent), "The User-Agent header of the request.")
	return fs
}

// newMainFlags creates a new, populated mainFlags structure.
// Fields are populated from command line arguments.
// If fields are not specified on the command line, environment variable values are used before defaulting to other defaults.
func newMainFlags(osArgs []string, osLookupEnvFunc func(string) (string, bool)) mainFlags {
	if len(osArgs) == 0 {
		osArgs = []string{""}
	}
	programArgs := osArgs[1:]
	var m mainFlags
	fs := m.newFlagSet(osLookupEnvFunc)
	fs.Parse(programArgs)
	m.url = fs.Arg(0)
	return m
}

// String implements the flag.Value interface.
func (h headerFlags) String() string {
	headers := make([]string, 0, len(h))
	for k, v := range h {
		headers = append(headers, k+": "+v)
	}
	return strings.Join(headers, ", ")
}

// Set adds the "Key: Value" header.
func (h headerFlags) Set(value string) error {
	k, v, ok := strings.Cut(value, ":")
	k = strings.TrimSpace(k)
	if !ok || len(k) == 0 {
		return errors.New("header must be formatted as \"Key: Value\"")
	}
	h[k] = strings.TrimSpace(v)
	return nil
}
