package toolsets

func init() {
	register("volumes", []string{
		// Volumes
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
		// Snapshots
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
	})
}
