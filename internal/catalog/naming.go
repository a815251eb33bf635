package catalog

import "strings"

// MaxToolNameLen caps client-facing tool names; several MCP clients reject
// longer identifiers.
const MaxToolNameLen = 60

// ShortName applies the segment-wise shortening rules and truncates the
// result to MaxToolNameLen, keeping the dot-separated shape.
func ShortName(name string) string {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		if short, ok := shorteningRules[part]; ok {
			parts[i] = short
		}
	}
	short := strings.Join(parts, ".")
	if len(short) > MaxToolNameLen {
		short = short[:MaxToolNameLen]
	}
	return short
}

// MCPName is the client-facing identifier: the shortened name with dots
// replaced by underscores.
func MCPName(name string) string {
	return strings.ReplaceAll(ShortName(name), ".", "_")
}

// shorteningRules maps full segments to their abbreviated forms. Segments
// without an entry pass through unchanged.
var shorteningRules = map[string]string{
	// Resources
	"instances":              "insts",
	"flavors":                "flavs",
	"images":                 "imgs",
	"snapshots":              "snaps",
	"volumes":                "vols",
	"networks":               "nets",
	"subnets":                "subs",
	"routers":                "rtrs",
	"floating_ips":           "fips",
	"reserved_fixed_ips":     "rfips",
	"load_balancers":         "lb",
	"listeners":              "lnrs",
	"pools":                  "pools",
	"members":                "membs",
	"health_monitors":        "health_mon",
	"l7policies":             "l7pols",
	"l7_policies":            "l7pols",
	"security_groups":        "secgrps",
	"security_group_rules":   "secgrp_rules",
	"placement_groups":       "placegrps",
	"ssh_keys":               "sshkeys",
	"quotas":                 "qotas",
	"projects":               "projs",
	"regions":                "rgns",
	"secrets":                "secr",
	"clusters":               "clstrs",
	"registries":             "regs",
	"file_shares":            "fshares",
	"ai_clusters":            "ai_clstrs",
	"inference":              "infer",
	"deployments":            "deploys",
	"interfaces":             "ifaces",
	"metrics":                "metr",
	"baremetal":              "bm",
	"gpu_baremetal_clusters": "gpu_bm_clusters",
	"statuses":               "stats",
	"ip_ranges":              "iprngs",
	"rules":                  "rls",
	"access_rules":           "accessrls",
	"repositories":           "repos",
	"artifacts":              "arts",
	"users":                  "usrs",
	"tasks":                  "tsks",
	"requests":               "reqs",
	"role_assignments":       "roleasgns",
	"billing_reservations":   "billresrvs",
	"models":                 "mdls",
	"registry_credentials":   "regcreds",
	"servers":                "srvs",

	// Verbs
	"create":                     "new",
	"delete":                     "del",
	"list":                       "ls",
	"update":                     "upd",
	"replace":                    "repl",
	"assign_security_group":      "assign_secgrp",
	"unassign_security_group":    "unassign_secgrp",
	"add_to_placement_group":     "add_placegrp",
	"remove_from_placement_group": "rm_placegrp",
	"disable_port_security":      "dis_portsec",
	"enable_port_security":       "en_portsec",
	"get_console":                "get_con",
	"resize":                     "resz",
	"action":                     "act",
	"create_from_volume":         "new_vol",
	"upload":                     "upl",
	"change_type":                "chng_type",
	"revert_to_last_snapshot":    "revert_snap",
	"attach_to_instance":         "att_inst",
	"detach_from_instance":       "det_inst",
	"create_snapshot":            "snap",
	"get_capacity_by_region":     "get_cap_region",
	"attach_subnet":              "att_sub",
	"detach_subnet":              "det_sub",
	"attach_router":              "att_rtr",
	"detach_router":              "det_rtr",
	"add_member":                 "add_mbr",
	"remove_member":              "rm_mbr",
	"failover":                   "failovr",
	"copy":                       "cp",
	"revert_to_default":          "revert_def",
	"list_suitable":              "ls_suit",
	"list_for_resize":            "ls_resz",
	"attach":                     "att",
	"detach":                     "det",
	"powercycle_all_servers":     "pwrall_srvs",
	"reboot_all_servers":         "rebootall_srvs",
	"powercycle":                 "pwrcycle",
	"remove":                     "rm",
	"list_candidate_ports":       "ls_cand_ports",
	"list_connected_ports":       "ls_conn_ports",
	"replace_connected_ports":    "repl_conn_ports",
	"update_connected_ports":     "upd_conn_ports",
	"create_multiple":            "new_multi",
	"refresh_secret":             "refresh_secr",
	"acknowledge_all":            "ack_all",
	"acknowledge_one":            "ack_one",
	"upload_tls_certificate":     "upl_tls_cert",
	"get_api_key":                "get_apikey",
}
