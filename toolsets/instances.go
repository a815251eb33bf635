package toolsets

func init() {
	register("instances", []string{
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
	})
}
