// Package encoder resolves which hardware video encoder, if any, a run will
// use. The candidate table is static data keyed by host OS; resolution is a
// pure lookup plus one probe invocation per candidate. A failed probe always
// degrades to the next candidate or to the null configuration, never to an
// error.
package encoder
