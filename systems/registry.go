package systems

// Phase IDs used for per-frame perf tracking, in execution order.
const (
	PhaseInput     = "input"
	PhaseServe     = "serve"
	PhaseCollision = "collision"
	PhaseRules     = "rules"
	PhaseAI        = "ai"
	PhaseIntegrate = "integrate"
	PhaseFX        = "fx"
	PhaseRender    = "render"
)

// SystemInfo describes a frame phase for logs and overlays.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string
}

// SystemRegistry holds metadata about all frame phases.
// This centralizes naming so perf logs and the HUD stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known phases.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known phases in frame order.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: PhaseInput, Name: "Input", Description: "Drains input and applies paddle velocities"})
	r.Register(SystemInfo{ID: PhaseServe, Name: "Serve", Description: "Counts down the respawn delay"})
	r.Register(SystemInfo{ID: PhaseCollision, Name: "Collision", Description: "Resolves ball contacts and scoring"})
	r.Register(SystemInfo{ID: PhaseRules, Name: "Rules", Description: "Checks for match end"})
	r.Register(SystemInfo{ID: PhaseAI, Name: "AI", Description: "Steers AI paddles"})
	r.Register(SystemInfo{ID: PhaseIntegrate, Name: "Integrate", Description: "Moves paddles and ball"})
	r.Register(SystemInfo{ID: PhaseFX, Name: "FX", Description: "Updates contact sparks"})
	r.Register(SystemInfo{ID: PhaseRender, Name: "Render", Description: "Draws and presents the frame"})
}

// Register adds a phase to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns phase info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a phase ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered phases.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// IDs returns all phase IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
