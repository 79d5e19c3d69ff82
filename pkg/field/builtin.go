package field

import "github.com/nexhub-io/nexctl/pkg/api"

// Resource kinds served by the manager admin API.
const (
	KindJob   = "jobs"
	KindNode  = "nodes"
	KindImage = "images"
	KindUser  = "users"
)

// Builtin constructs the field catalog for every resource kind the CLI
// knows about. Called once at startup; the result is immutable.
func Builtin() *Registry {
	r := NewRegistry()

	r.MustAddKind(KindJob,
		[]*FieldSpec{
			{Key: "id", WirePath: "id", DisplayName: "ID"},
			{Key: "name", WirePath: "name", DisplayName: "Name"},
			{Key: "type", WirePath: "type", DisplayName: "Type"},
			{Key: "status", WirePath: "status", DisplayName: "Status"},
			{Key: "status_info", WirePath: "status_info", DisplayName: "Status Info",
				MinVersion: api.MustVersion("20.09")},
			{Key: "owner", WirePath: "owner.email", DisplayName: "Owner",
				MinVersion: api.MustVersion("20.03")},
			{Key: "image", WirePath: "image", DisplayName: "Image"},
			{Key: "occupied_slots", WirePath: "occupied_slots", DisplayName: "Occupied Slots",
				Transform: Slots},
			{Key: "mem_used", WirePath: "mem_cur_bytes", DisplayName: "Used Memory (MiB)",
				Transform: MiB},
			{Key: "cluster_size", WirePath: "cluster_size", DisplayName: "Cluster Size",
				MinVersion: api.MustVersion("20.09")},
			{Key: "created_at", WirePath: "created_at", DisplayName: "Created At",
				Transform: ShortTimestamp},
			{Key: "terminated_at", WirePath: "terminated_at", DisplayName: "Terminated At",
				Transform: ShortTimestamp},
		},
		[]string{"id", "status", "created_at"},
		[]string{
			"id", "name", "type", "status", "status_info", "owner", "image",
			"occupied_slots", "mem_used", "created_at", "terminated_at",
		},
	)

	r.MustAddKind(KindNode,
		[]*FieldSpec{
			{Key: "id", WirePath: "id", DisplayName: "ID"},
			{Key: "status", WirePath: "status", DisplayName: "Status"},
			{Key: "region", WirePath: "region", DisplayName: "Region"},
			{Key: "first_contact", WirePath: "first_contact", DisplayName: "First Contact",
				Transform: ShortTimestamp},
			{Key: "cpu_pct", WirePath: "cpu_cur_pct", DisplayName: "CPU Usage",
				Transform: Percent},
			{Key: "mem_used", WirePath: "mem_cur_bytes", DisplayName: "Used Memory (MiB)",
				Transform: MiB},
			{Key: "available_slots", WirePath: "available_slots", DisplayName: "Total Slots",
				Transform: Slots},
			{Key: "occupied_slots", WirePath: "occupied_slots", DisplayName: "Occupied Slots",
				Transform: Slots},
			{Key: "schedulable", WirePath: "schedulable", DisplayName: "Schedulable",
				MinVersion: api.MustVersion("20.09")},
		},
		[]string{"id", "status", "region", "cpu_pct", "mem_used"},
		[]string{
			"id", "status", "region", "first_contact", "cpu_pct", "mem_used",
			"available_slots", "occupied_slots", "schedulable",
		},
	)

	r.MustAddKind(KindImage,
		[]*FieldSpec{
			{Key: "name", WirePath: "name", DisplayName: "Name"},
			{Key: "registry", WirePath: "registry", DisplayName: "Registry"},
			{Key: "tag", WirePath: "tag", DisplayName: "Tag"},
			{Key: "digest", WirePath: "digest", DisplayName: "Digest"},
			{Key: "architecture", WirePath: "architecture", DisplayName: "Architecture",
				MinVersion: api.MustVersion("20.09")},
			{Key: "size", WirePath: "size_bytes", DisplayName: "Size",
				Transform: HumanBytes},
			{Key: "aliases", WirePath: "aliases", DisplayName: "Aliases",
				Transform: JoinList},
			{Key: "installed", WirePath: "installed", DisplayName: "Installed"},
		},
		[]string{"name", "registry", "tag", "size"},
		[]string{
			"name", "registry", "tag", "digest", "architecture", "size",
			"aliases", "installed",
		},
	)

	r.MustAddKind(KindUser,
		[]*FieldSpec{
			{Key: "uuid", WirePath: "uuid", DisplayName: "UUID"},
			{Key: "username", WirePath: "username", DisplayName: "Username"},
			{Key: "email", WirePath: "email", DisplayName: "Email"},
			{Key: "role", WirePath: "role", DisplayName: "Role"},
			{Key: "status", WirePath: "status", DisplayName: "Status",
				MinVersion: api.MustVersion("20.09")},
			{Key: "domain", WirePath: "domain_name", DisplayName: "Domain"},
			{Key: "groups", WirePath: "groups", DisplayName: "Groups",
				Transform: JoinList},
			{Key: "created_at", WirePath: "created_at", DisplayName: "Created At",
				Transform: ShortTimestamp},
		},
		[]string{"username", "email", "role", "domain"},
		[]string{
			"uuid", "username", "email", "role", "status", "domain",
			"groups", "created_at",
		},
	)

	return r
}
