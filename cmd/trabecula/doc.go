// Command trabecula runs the full volume-to-report pipeline over one
// named dataset: load, thin, extract the graph, compute metrics, and
// write the skeleton plus a text report back out.
package main
