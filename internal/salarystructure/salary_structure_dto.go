package salarystructure

type ComponentInput struct {
	Label     string  `json:"label" binding:"required"`
	Type      string  `json:"type" binding:"required,oneof=EARNING DEDUCTION"`
	ValueType string  `json:"value_type" binding:"required,oneof=FIXED PERCENTAGE"`
	Value     float64 `json:"value" binding:"min=0"`
}

type CreateStructureRequest struct {
	Name       string           `json:"name" binding:"required"`
	CTCAnnual  int64            `json:"ctc_annual" binding:"min=0"`
	Components []ComponentInput `json:"components" binding:"dive"`
}

type UpdateStructureRequest struct {
	Name       string           `json:"name" binding:"required"`
	CTCAnnual  int64            `json:"ctc_annual" binding:"min=0"`
	Components []ComponentInput `json:"components" binding:"dive"`
}

type ComponentResponse struct {
	Label     string  `json:"label"`
	Type      string  `json:"type"`
	ValueType string  `json:"value_type"`
	Value     float64 `json:"value"`
}

type StructureResponse struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	CTCAnnual  int64               `json:"ctc_annual"`
	Components []ComponentResponse `json:"components"`
}
