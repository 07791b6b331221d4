// Command cgrtool is the CLI front-end over the contact-graph routing
// core: it loads a contact catalog from a file, a NATS subject, or a
// synthetic generator, runs a single-best or K-alternatives query
// against it, and renders the result as JSON or text.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/contactrouting/cgr/contact"
	"github.com/contactrouting/cgr/internal/xlog"
	"github.com/contactrouting/cgr/loader"
	"github.com/contactrouting/cgr/remote"
	"github.com/contactrouting/cgr/synth"
	"github.com/nats-io/nats.go"
)

// Exit codes per the CLI's external contract: 0 covers both "route
// found" and "no route found", 2 is an argument error, 1 is a
// data-load failure.
const (
	exitOK       = 0
	exitArgError = 2
	exitDataLoad = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cgrtool", flag.ContinueOnError)
	fs.SetOutput(stderr)

	contactsPath := fs.String("contacts", "", "path to a textual exchange format contact file")
	src := fs.Int("src", 0, "source node id")
	dst := fs.Int("dst", 0, "destination node id")
	t0 := fs.Float64("t0", 0, "query departure time, seconds")
	bundleBytes := fs.Float64("bytes", 0, "bundle size, bytes")
	expiry := fs.Float64("expiry", 0, "query expiry, seconds relative to t0 (0 = none)")
	k := fs.Int("k", 0, "K routes by capacity consumption")
	kYen := fs.Int("k-yen", 0, "K routes by Yen-style deviation (takes precedence over --k)")
	pretty := fs.Bool("pretty", false, "pretty-print JSON output")
	format := fs.String("format", "json", "output format: json|text")
	source := fs.String("source", "file", "contact source: file|nats")
	syntheticSpec := fs.String("synthetic", "", "planes,sats,stations,seed: route over a generated catalog instead of --contacts")
	natsURL := fs.String("nats-url", nats.DefaultURL, "NATS server URL, used when --source=nats")
	natsSubject := fs.String("nats-subject", "", "NATS subject override, used when --source=nats")
	natsWait := fs.Duration("nats-wait", 2*time.Second, "how long to collect contact windows before routing, used when --source=nats")
	logLevel := fs.String("log-level", "info", "log level: debug|info|warn|error")

	if err := fs.Parse(args); err != nil {
		return exitArgError
	}

	log := xlog.New(*logLevel)

	visited := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { visited[f.Name] = true })

	if !visited["src"] || !visited["dst"] {
		fmt.Fprintln(stderr, "cgrtool: --src and --dst are required")
		return exitArgError
	}
	if !visited["t0"] {
		fmt.Fprintln(stderr, "cgrtool: --t0 is required")
		return exitArgError
	}
	if *src < 0 || *dst < 0 {
		fmt.Fprintln(stderr, "cgrtool: --src and --dst must be non-negative")
		return exitArgError
	}
	if *t0 < 0 {
		fmt.Fprintln(stderr, "cgrtool: --t0 must be non-negative")
		return exitArgError
	}
	if *bundleBytes <= 0 {
		fmt.Fprintln(stderr, "cgrtool: --bytes must be positive")
		return exitArgError
	}
	if *expiry < 0 {
		fmt.Fprintln(stderr, "cgrtool: --expiry must be non-negative")
		return exitArgError
	}
	if *format != "json" && *format != "text" {
		fmt.Fprintln(stderr, "cgrtool: --format must be json or text")
		return exitArgError
	}
	if visited["k"] && *k < 1 {
		fmt.Fprintln(stderr, "cgrtool: --k must be at least 1")
		return exitArgError
	}
	if visited["k-yen"] && *kYen < 0 {
		fmt.Fprintln(stderr, "cgrtool: --k-yen must be non-negative")
		return exitArgError
	}

	cs, err := loadCatalog(catalogRequest{
		source:        *source,
		contactsPath:  *contactsPath,
		syntheticSpec: *syntheticSpec,
		natsURL:       *natsURL,
		natsSubject:   *natsSubject,
		natsWait:      *natsWait,
	}, log)
	switch {
	case err == nil:
		// fall through
	case err.argError:
		fmt.Fprintf(stderr, "cgrtool: %v\n", err.err)
		return exitArgError
	default:
		fmt.Fprintf(stderr, "cgrtool: %v\n", err.err)
		return exitDataLoad
	}

	idx := contact.BuildIndex(cs)
	q := contact.Query{Src: *src, Dst: *dst, T0: *t0, BundleBytes: *bundleBytes, Expiry: *expiry}

	var routes []contact.Route
	single := !visited["k"] && !visited["k-yen"]

	switch {
	case visited["k-yen"]:
		routes = contact.KRoutesByYen(cs, idx, q, *kYen).Routes
	case visited["k"]:
		routes = contact.KRoutesByConsumption(cs, idx, q, *k).Routes
	default:
		r := contact.BestRoute(cs, idx, q)
		if r.Found {
			routes = []contact.Route{r}
		}
	}

	log.Infof("query src=%d dst=%d t0=%.6f bytes=%.6f routes_found=%d", *src, *dst, *t0, *bundleBytes, len(routes))

	if *format == "text" {
		textReport(stdout, routes, *t0)
		return exitOK
	}

	var body []byte
	var marshalErr error
	if single {
		var r contact.Route
		if len(routes) > 0 {
			r = routes[0]
		}
		body, marshalErr = singleRouteJSON(r, *t0)
	} else {
		body, marshalErr = multiRouteJSON(contact.Routes{Routes: routes}, *t0)
	}
	if marshalErr != nil {
		fmt.Fprintf(stderr, "cgrtool: encoding output: %v\n", marshalErr)
		return exitDataLoad
	}

	body, marshalErr = maybeIndent(body, *pretty)
	if marshalErr != nil {
		fmt.Fprintf(stderr, "cgrtool: encoding output: %v\n", marshalErr)
		return exitDataLoad
	}

	fmt.Fprintln(stdout, string(body))
	return exitOK
}

// catalogRequest bundles the flags that determine where the contact
// catalog comes from.
type catalogRequest struct {
	source        string
	contactsPath  string
	syntheticSpec string
	natsURL       string
	natsSubject   string
	natsWait      time.Duration
}

// catalogError distinguishes an argument-shape problem (exit 2) from a
// genuine data-load failure (exit 1) while loading a catalog.
type catalogError struct {
	err      error
	argError bool
}

func (e *catalogError) Error() string { return e.err.Error() }

func loadCatalog(req catalogRequest, log *xlog.Logger) (cs []contact.Contact, cerr *catalogError) {
	if req.syntheticSpec != "" {
		return loadSynthetic(req.syntheticSpec)
	}

	switch req.source {
	case "file":
		if req.contactsPath == "" {
			return nil, &catalogError{err: fmt.Errorf("--contacts is required when --source=file"), argError: true}
		}
		cs, err := loader.LoadFile(req.contactsPath)
		if err != nil {
			return nil, &catalogError{err: err}
		}
		return cs, nil
	case "nats":
		return loadFromNATS(req, log)
	default:
		return nil, &catalogError{err: fmt.Errorf("unknown --source %q", req.source), argError: true}
	}
}

// loadSynthetic parses "planes,sats,stations,seed" and generates a
// catalog from it.
func loadSynthetic(spec string) ([]contact.Contact, *catalogError) {
	fields := strings.Split(spec, ",")
	if len(fields) != 4 {
		return nil, &catalogError{err: fmt.Errorf("--synthetic expects planes,sats,stations,seed, got %q", spec), argError: true}
	}

	ints := make([]int64, 4)
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, &catalogError{err: fmt.Errorf("--synthetic field %d: %w", i, err), argError: true}
		}
		ints[i] = v
	}

	cfg := synth.Config{
		Planes:       int(ints[0]),
		SatsPerPlane: int(ints[1]),
		Stations:     int(ints[2]),
		Seed:         ints[3],
	}
	gen, err := synth.NewGenerator(cfg)
	if err != nil {
		return nil, &catalogError{err: err, argError: true}
	}
	return gen.Generate(), nil
}

// loadFromNATS connects to req.natsURL, collects contact windows for
// req.natsWait, then drains the subscription and returns whatever was
// collected. An empty result after the wait is a data-load failure, the
// same outcome an empty file would produce.
func loadFromNATS(req catalogRequest, log *xlog.Logger) ([]contact.Contact, *catalogError) {
	conn, err := nats.Connect(req.natsURL)
	if err != nil {
		return nil, &catalogError{err: fmt.Errorf("connecting to %s: %w", req.natsURL, err)}
	}
	defer conn.Close()

	var opts []remote.Option
	if req.natsSubject != "" {
		opts = append(opts, remote.WithSubject(req.natsSubject))
	}

	sub := remote.NewSubscriber(conn, log, opts...)

	var cs []contact.Contact
	if err := sub.Start(func(c contact.Contact) {
		cs = append(cs, c)
	}); err != nil {
		return nil, &catalogError{err: err}
	}

	ctx, cancel := context.WithTimeout(context.Background(), req.natsWait)
	defer cancel()
	<-ctx.Done()

	if err := sub.Stop(); err != nil {
		log.Warnf("draining NATS subscription: %v", err)
	}

	if len(cs) == 0 {
		return nil, &catalogError{err: fmt.Errorf("no contact windows received on %s within %s", req.natsURL, req.natsWait)}
	}
	return cs, nil
}
