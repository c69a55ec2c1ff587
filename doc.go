// Command gojira serves a server-rendered web site whose pages are gated by
// login, staff membership and premium status. Run "gojira start" to serve
// the site and "gojira config dump" to print the effective configuration.
package main
