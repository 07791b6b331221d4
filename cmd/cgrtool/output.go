package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/contactrouting/cgr/contact"
)

// fixedFloat marshals as a plain six-decimal fixed-point JSON number
// (never scientific notation, never a variable number of decimals),
// per the CLI's numeric-output contract.
type fixedFloat float64

func (f fixedFloat) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(f), 'f', 6, 64)), nil
}

// routeJSON is the per-route JSON shape shared by the single-route and
// multi-route output forms.
type routeJSON struct {
	ETA      fixedFloat `json:"eta"`
	Latency  fixedFloat `json:"latency"`
	Hops     int        `json:"hops"`
	Contacts []int      `json:"contacts"`
}

func toRouteJSON(r contact.Route, t0 float64) routeJSON {
	contacts := r.ContactIDs
	if contacts == nil {
		contacts = []int{}
	}
	return routeJSON{
		ETA:      fixedFloat(r.ETA),
		Latency:  fixedFloat(r.ETA - t0),
		Hops:     r.Hops,
		Contacts: contacts,
	}
}

// singleRouteJSON renders the single-route output shape: {"found":true,
// "eta":F,"latency":F,"hops":N,"contacts":[id,...]} or {"found":false}.
func singleRouteJSON(r contact.Route, t0 float64) ([]byte, error) {
	if !r.Found {
		return json.Marshal(struct {
			Found bool `json:"found"`
		}{false})
	}

	rj := toRouteJSON(r, t0)
	return json.Marshal(struct {
		Found    bool       `json:"found"`
		ETA      fixedFloat `json:"eta"`
		Latency  fixedFloat `json:"latency"`
		Hops     int        `json:"hops"`
		Contacts []int      `json:"contacts"`
	}{true, rj.ETA, rj.Latency, rj.Hops, rj.Contacts})
}

// multiRouteJSON renders the multi-route output shape: {"found":true,
// "routes":[{...},...]} or {"found":false,"routes":[]}.
func multiRouteJSON(rs contact.Routes, t0 float64) ([]byte, error) {
	if len(rs.Routes) == 0 {
		return json.Marshal(struct {
			Found  bool        `json:"found"`
			Routes []routeJSON `json:"routes"`
		}{false, []routeJSON{}})
	}

	list := make([]routeJSON, len(rs.Routes))
	for i, r := range rs.Routes {
		list[i] = toRouteJSON(r, t0)
	}
	return json.Marshal(struct {
		Found  bool        `json:"found"`
		Routes []routeJSON `json:"routes"`
	}{true, list})
}

// maybeIndent re-indents compact JSON produced by singleRouteJSON or
// multiRouteJSON when pretty output was requested, via json.Indent
// rather than re-marshaling so the fixedFloat formatting survives
// untouched.
func maybeIndent(b []byte, pretty bool) ([]byte, error) {
	if !pretty {
		return b, nil
	}
	var buf strings.Builder
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// textReport renders the human-readable listing: a header block (ETA
// min/max/avg, diversity delta, hop range) followed by one line per
// route (ETA, latency, hops, overhead-vs-optimal percent, and an
// arrow-joined contact id sequence). routes is in ascending-ETA
// discovery order; routes[0], if present, is the optimal route used as
// the 0% overhead baseline.
func textReport(w io.Writer, routes []contact.Route, t0 float64) {
	if len(routes) == 0 {
		fmt.Fprintln(w, "no route found")
		return
	}

	minETA, maxETA, sumETA := routes[0].ETA, routes[0].ETA, 0.0
	minHops, maxHops := routes[0].Hops, routes[0].Hops
	distinct := map[int]struct{}{}
	for _, r := range routes {
		if r.ETA < minETA {
			minETA = r.ETA
		}
		if r.ETA > maxETA {
			maxETA = r.ETA
		}
		sumETA += r.ETA
		if r.Hops < minHops {
			minHops = r.Hops
		}
		if r.Hops > maxHops {
			maxHops = r.Hops
		}
		for _, id := range r.ContactIDs {
			distinct[id] = struct{}{}
		}
	}
	avgETA := sumETA / float64(len(routes))

	fmt.Fprintf(w, "eta: min=%.6f max=%.6f avg=%.6f\n", minETA, maxETA, avgETA)
	fmt.Fprintf(w, "hops: min=%d max=%d\n", minHops, maxHops)
	fmt.Fprintf(w, "diversity: delta=%d distinct contacts across %d routes\n", len(distinct), len(routes))
	fmt.Fprintln(w)

	optimalETA := routes[0].ETA
	for i, r := range routes {
		overhead := 0.0
		if optimalETA != 0 {
			overhead = (r.ETA - optimalETA) / optimalETA * 100
		}
		ids := make([]string, len(r.ContactIDs))
		for j, id := range r.ContactIDs {
			ids[j] = strconv.Itoa(id)
		}
		fmt.Fprintf(w, "route %d: eta=%.6f latency=%.6f hops=%d overhead=%.2f%% contacts=%s\n",
			i, r.ETA, r.ETA-t0, r.Hops, overhead, strings.Join(ids, "->"))
	}
}
