package toolsets

func init() {
	register("management", []string{
		// Projects
		"cloud.projects.create",
		"cloud.projects.list",
		"cloud.projects.get",
		"cloud.projects.update",
		"cloud.projects.delete",
		// Regions
		"cloud.regions.list",
		"cloud.regions.get",
		// Placement groups
		"cloud.placement_groups.create",
		"cloud.placement_groups.list",
		"cloud.placement_groups.get",
		"cloud.placement_groups.update",
		"cloud.placement_groups.delete",
		// Tasks
		"cloud.tasks.list",
		"cloud.tasks.get",
		"cloud.tasks.acknowledge_all",
		"cloud.tasks.acknowledge_one",
		// Quotas
		"cloud.quotas.list",
		"cloud.quotas.get",
	})
}
