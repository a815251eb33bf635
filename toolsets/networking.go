package toolsets

func init() {
	register("networks", []string{
		// Networks
		"cloud.networks.create",
		"cloud.networks.list",
		"cloud.networks.get",
		"cloud.networks.update",
		"cloud.networks.delete",
		"cloud.networks.subnets.create",
		"cloud.networks.subnets.list",
		"cloud.networks.subnets.get",
		"cloud.networks.subnets.update",
		"cloud.networks.subnets.delete",
		"cloud.networks.routers.create",
		"cloud.networks.routers.list",
		"cloud.networks.routers.get",
		"cloud.networks.routers.update",
		"cloud.networks.routers.delete",
		"cloud.networks.routers.attach_subnet",
		"cloud.networks.routers.detach_subnet",
		// Floating IPs
		"cloud.floating_ips.create",
		"cloud.floating_ips.list",
		"cloud.floating_ips.get",
		"cloud.floating_ips.update",
		"cloud.floating_ips.delete",
		// Reserved fixed IPs
		"cloud.reserved_fixed_ips.create",
		"cloud.reserved_fixed_ips.list",
		"cloud.reserved_fixed_ips.get",
		"cloud.reserved_fixed_ips.update",
		"cloud.reserved_fixed_ips.delete",
		// Load balancers
		"cloud.load_balancers.create",
		"cloud.load_balancers.list",
		"cloud.load_balancers.get",
		"cloud.load_balancers.update",
		"cloud.load_balancers.delete",
		"cloud.load_balancers.flavors.list",
		"cloud.load_balancers.listeners.create",
		"cloud.load_balancers.listeners.list",
		"cloud.load_balancers.listeners.get",
		"cloud.load_balancers.listeners.update",
		"cloud.load_balancers.listeners.delete",
		"cloud.load_balancers.pools.create",
		"cloud.load_balancers.pools.list",
		"cloud.load_balancers.pools.get",
		"cloud.load_balancers.pools.update",
		"cloud.load_balancers.pools.delete",
		"cloud.load_balancers.l7policies.create",
		"cloud.load_balancers.l7policies.list",
		"cloud.load_balancers.l7policies.get",
		"cloud.load_balancers.l7policies.update",
		"cloud.load_balancers.l7policies.delete",
	})
}
