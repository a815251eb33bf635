package catalog

// cloudTools enumerates the cloud service surface in catalog order. Grouped
// by resource; order within a group is the upstream API declaration order.
var cloudTools = []string{
	// Instances
	"cloud.instances.create",
	"cloud.instances.list",
	"cloud.instances.get",
	"cloud.instances.update",
	"cloud.instances.delete",
	"cloud.instances.assign_security_group",
	"cloud.instances.unassign_security_group",
	"cloud.instances.resize",
	"cloud.instances.get_console",
	"cloud.instances.add_to_placement_group",
	"cloud.instances.remove_from_placement_group",
	"cloud.instances.disable_port_security",
	"cloud.instances.enable_port_security",
	"cloud.instances.action",
	"cloud.instances.flavors.list",
	"cloud.instances.flavors.list_suitable",
	"cloud.instances.flavors.list_for_resize",
	"cloud.instances.interfaces.list",
	"cloud.instances.interfaces.attach",
	"cloud.instances.interfaces.detach",
	"cloud.instances.images.create_from_volume",
	"cloud.instances.images.list",
	"cloud.instances.images.get",
	"cloud.instances.images.update",
	"cloud.instances.images.delete",
	"cloud.instances.images.upload",
	"cloud.instances.metrics.list",

	// Bare metal servers
	"cloud.baremetal.create",
	"cloud.baremetal.list",
	"cloud.baremetal.get",
	"cloud.baremetal.update",
	"cloud.baremetal.delete",
	"cloud.baremetal.action",
	"cloud.baremetal.resize",
	"cloud.baremetal.get_console",
	"cloud.baremetal.assign_security_group",
	"cloud.baremetal.unassign_security_group",
	"cloud.baremetal.add_to_placement_group",
	"cloud.baremetal.remove_from_placement_group",
	"cloud.baremetal.disable_port_security",
	"cloud.baremetal.enable_port_security",
	"cloud.baremetal.flavors.list",
	"cloud.baremetal.flavors.list_suitable",
	"cloud.baremetal.interfaces.list",
	"cloud.baremetal.interfaces.attach",
	"cloud.baremetal.interfaces.detach",
	"cloud.baremetal.metrics.list",
	"cloud.baremetal.images.list",
	"cloud.baremetal.servers.create",
	"cloud.baremetal.servers.list",
	"cloud.baremetal.servers.rebuild",

	// GPU bare metal clusters
	"cloud.gpu_baremetal_clusters.create",
	"cloud.gpu_baremetal_clusters.list",
	"cloud.gpu_baremetal_clusters.get",
	"cloud.gpu_baremetal_clusters.update",
	"cloud.gpu_baremetal_clusters.delete",
	"cloud.gpu_baremetal_clusters.rebuild",
	"cloud.gpu_baremetal_clusters.resize",
	"cloud.gpu_baremetal_clusters.powercycle_all_servers",
	"cloud.gpu_baremetal_clusters.reboot_all_servers",
	"cloud.gpu_baremetal_clusters.interfaces.list",
	"cloud.gpu_baremetal_clusters.flavors.list",
	"cloud.gpu_baremetal_clusters.servers.create",
	"cloud.gpu_baremetal_clusters.servers.list",
	"cloud.gpu_baremetal_clusters.servers.get",
	"cloud.gpu_baremetal_clusters.servers.delete",
	"cloud.gpu_baremetal_clusters.servers.attach_interface",
	"cloud.gpu_baremetal_clusters.servers.detach_interface",
	"cloud.gpu_baremetal_clusters.servers.get_console",
	"cloud.gpu_baremetal_clusters.servers.powercycle",
	"cloud.gpu_baremetal_clusters.servers.reboot",
	"cloud.gpu_baremetal_clusters.images.upload",
	"cloud.gpu_baremetal_clusters.images.list",
	"cloud.gpu_baremetal_clusters.images.get",
	"cloud.gpu_baremetal_clusters.images.update",
	"cloud.gpu_baremetal_clusters.images.delete",

	// Inference
	"cloud.inference.get_capacity_by_region",
	"cloud.inference.flavors.list",
	"cloud.inference.flavors.get",
	"cloud.inference.models.list",
	"cloud.inference.models.get",
	"cloud.inference.deployments.create",
	"cloud.inference.deployments.list",
	"cloud.inference.deployments.get",
	"cloud.inference.deployments.update",
	"cloud.inference.deployments.delete",
	"cloud.inference.deployments.get_api_key",
	"cloud.inference.deployments.start",
	"cloud.inference.deployments.stop",
	"cloud.inference.deployments.logs.list",
	"cloud.inference.registry_credentials.create",
	"cloud.inference.registry_credentials.list",
	"cloud.inference.registry_credentials.get",
	"cloud.inference.registry_credentials.replace",
	"cloud.inference.registry_credentials.delete",
	"cloud.inference.secrets.create",
	"cloud.inference.secrets.list",
	"cloud.inference.secrets.get",
	"cloud.inference.secrets.replace",
	"cloud.inference.secrets.delete",

	// AI clusters
	"cloud.ai_clusters.create",
	"cloud.ai_clusters.list",
	"cloud.ai_clusters.get",
	"cloud.ai_clusters.update",
	"cloud.ai_clusters.delete",

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

	// Floating and reserved fixed IPs
	"cloud.floating_ips.create",
	"cloud.floating_ips.list",
	"cloud.floating_ips.get",
	"cloud.floating_ips.update",
	"cloud.floating_ips.delete",
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
	"cloud.load_balancers.failover",
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

	// Security groups
	"cloud.security_groups.create",
	"cloud.security_groups.list",
	"cloud.security_groups.get",
	"cloud.security_groups.update",
	"cloud.security_groups.delete",
	"cloud.security_groups.copy",
	"cloud.security_groups.revert_to_default",
	"cloud.security_groups.rules.create",
	"cloud.security_groups.rules.replace",
	"cloud.security_groups.rules.delete",

	// SSH keys and secrets
	"cloud.ssh_keys.create",
	"cloud.ssh_keys.list",
	"cloud.ssh_keys.get",
	"cloud.ssh_keys.update",
	"cloud.ssh_keys.delete",
	"cloud.secrets.create",
	"cloud.secrets.list",
	"cloud.secrets.get",
	"cloud.secrets.update",
	"cloud.secrets.delete",

	// Volumes and snapshots
	"cloud.volumes.create",
	"cloud.volumes.list",
	"cloud.volumes.get",
	"cloud.volumes.update",
	"cloud.volumes.delete",
	"cloud.volumes.resize",
	"cloud.volumes.change_type",
	"cloud.volumes.revert_to_last_snapshot",
	"cloud.volumes.attach_to_instance",
	"cloud.volumes.detach_from_instance",
	"cloud.volumes.snapshots.create",
	"cloud.volumes.snapshots.list",
	"cloud.volumes.snapshots.get",
	"cloud.volumes.snapshots.update",
	"cloud.volumes.snapshots.delete",

	// File shares
	"cloud.file_shares.create",
	"cloud.file_shares.list",
	"cloud.file_shares.get",
	"cloud.file_shares.update",
	"cloud.file_shares.delete",
	"cloud.file_shares.extend",
	"cloud.file_shares.get_capacity_by_region",

	// Projects, regions, placement groups
	"cloud.projects.create",
	"cloud.projects.list",
	"cloud.projects.get",
	"cloud.projects.update",
	"cloud.projects.delete",
	"cloud.regions.list",
	"cloud.regions.get",
	"cloud.placement_groups.create",
	"cloud.placement_groups.list",
	"cloud.placement_groups.get",
	"cloud.placement_groups.update",
	"cloud.placement_groups.delete",

	// Tasks and quotas
	"cloud.tasks.list",
	"cloud.tasks.get",
	"cloud.tasks.acknowledge_all",
	"cloud.tasks.acknowledge_one",
	"cloud.quotas.list",
	"cloud.quotas.get",

	// Container registries
	"cloud.registries.create",
	"cloud.registries.list",
	"cloud.registries.get",
	"cloud.registries.update",
	"cloud.registries.delete",
}
