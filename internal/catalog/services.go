package catalog

// waapTools covers the web application and API protection service.
var waapTools = []string{
	"waap.domains.list",
	"waap.domains.get",
	"waap.domains.update",
	"waap.policies.list",
	"waap.policies.get",
	"waap.policies.toggle",
	"waap.custom_rules.create",
	"waap.custom_rules.list",
	"waap.custom_rules.get",
	"waap.custom_rules.update",
	"waap.custom_rules.delete",
	"waap.statistics.get",
}

// dnsTools covers managed DNS zones and records.
var dnsTools = []string{
	"dns.zones.create",
	"dns.zones.list",
	"dns.zones.get",
	"dns.zones.delete",
	"dns.records.create",
	"dns.records.list",
	"dns.records.get",
	"dns.records.update",
	"dns.records.delete",
}
