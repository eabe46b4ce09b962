package version

const Version = "1.0.0"

// ProtocolVersion is the latest MCP protocol revision this server speaks.
const ProtocolVersion = "2025-03-26"

var SupportedProtocolVersions = []string{
	"2025-03-26",
	"2024-11-05",
	"2024-10-07",
}
