package toolsets

func init() {
	register("security", []string{
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
		// SSH keys
		"cloud.ssh_keys.create",
		"cloud.ssh_keys.list",
		"cloud.ssh_keys.get",
		"cloud.ssh_keys.update",
		"cloud.ssh_keys.delete",
		// Secrets
		"cloud.secrets.create",
		"cloud.secrets.list",
		"cloud.secrets.get",
		"cloud.secrets.update",
		"cloud.secrets.delete",
	})

	register("containers", []string{
		"cloud.registries.create",
		"cloud.registries.list",
		"cloud.registries.get",
		"cloud.registries.update",
		"cloud.registries.delete",
	})
}
