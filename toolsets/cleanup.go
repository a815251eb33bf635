package toolsets

func init() {
	// Every delete method, for tearing environments down in one sweep.
	register("cleanup", []string{
		"cloud.secrets.delete",
		"cloud.ssh_keys.delete",
		"cloud.load_balancers.delete",
		"cloud.load_balancers.l7policies.delete",
		"cloud.load_balancers.listeners.delete",
		"cloud.load_balancers.pools.delete",
		"cloud.reserved_fixed_ips.delete",
		"cloud.networks.delete",
		"cloud.networks.subnets.delete",
		"cloud.networks.routers.delete",
		"cloud.volumes.delete",
		"cloud.floating_ips.delete",
		"cloud.security_groups.delete",
		"cloud.inference.deployments.delete",
		"cloud.placement_groups.delete",
		"cloud.registries.delete",
		"cloud.file_shares.delete",
		"cloud.gpu_baremetal_clusters.delete",
		"cloud.gpu_baremetal_clusters.servers.delete",
		"cloud.gpu_baremetal_clusters.images.delete",
		"cloud.instances.delete",
		"cloud.instances.images.delete",
	})

	register("list", []string{
		"cloud.instances.list",
		"cloud.instances.flavors.list",
		"cloud.instances.images.list",
		"cloud.baremetal.images.list",
		"cloud.baremetal.flavors.list",
		"cloud.baremetal.servers.list",
		"cloud.gpu_baremetal_clusters.list",
		"cloud.gpu_baremetal_clusters.flavors.list",
		"cloud.gpu_baremetal_clusters.images.list",
		"cloud.networks.list",
		"cloud.networks.subnets.list",
		"cloud.networks.routers.list",
	})
}
