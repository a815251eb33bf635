package toolsets

func init() {
	register("ai_ml", []string{
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
	})
}
