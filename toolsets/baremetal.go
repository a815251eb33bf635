package toolsets

func init() {
	register("baremetal", []string{
		"cloud.baremetal.images.list",
		"cloud.baremetal.flavors.list",
		"cloud.baremetal.flavors.list_suitable",
		"cloud.baremetal.servers.create",
		"cloud.baremetal.servers.list",
		"cloud.baremetal.servers.rebuild",
	})

	register("gpu_baremetal", []string{
		"cloud.gpu_baremetal_clusters.create",
		"cloud.gpu_baremetal_clusters.get",
		"cloud.gpu_baremetal_clusters.delete",
		"cloud.gpu_baremetal_clusters.list",
		"cloud.gpu_baremetal_clusters.rebuild",
		"cloud.gpu_baremetal_clusters.resize",
		"cloud.gpu_baremetal_clusters.powercycle_all_servers",
		"cloud.gpu_baremetal_clusters.reboot_all_servers",
		"cloud.gpu_baremetal_clusters.interfaces.list",
		"cloud.gpu_baremetal_clusters.servers.delete",
		"cloud.gpu_baremetal_clusters.servers.attach_interface",
		"cloud.gpu_baremetal_clusters.servers.detach_interface",
		"cloud.gpu_baremetal_clusters.servers.get_console",
		"cloud.gpu_baremetal_clusters.servers.powercycle",
		"cloud.gpu_baremetal_clusters.servers.reboot",
		"cloud.gpu_baremetal_clusters.flavors.list",
		"cloud.gpu_baremetal_clusters.images.upload",
		"cloud.gpu_baremetal_clusters.images.list",
		"cloud.gpu_baremetal_clusters.images.get",
		"cloud.gpu_baremetal_clusters.images.delete",
	})
}
