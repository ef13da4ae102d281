// Package timezones provides IANA timezone options for select fields, a
// search helper and a small net/http handler that returns matching options
// as JSON for remote-search selects.
//
// The handler responds to GET and HEAD requests and reads the query and limit
// parameters. The backing list is embedded from data/zones.txt.
package timezones
