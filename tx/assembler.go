package tx

// AdjustInputsOutputs appends newInputs to the builder and ensures a
// change output exists for every asset they carry.
//
// Contract inputs occupy leading positions and contract outputs
// reference them by index, so new resource inputs are strictly appended
// after all existing inputs; nothing is ever inserted or reordered.
//
// Exactly one change output per (changeOwner, asset) pair is kept:
// repeated calls for the same asset do not duplicate change outputs.
// Deduplication of resource ids across calls is the selector's job, not
// performed here.
func AdjustInputsOutputs(b *ScriptBuilder, newInputs []Input, changeOwner Address) {
	b.Inputs = append(b.Inputs, newInputs...)

	for _, asset := range distinctAssets(newInputs) {
		if !hasChangeOutput(b.Outputs, changeOwner, asset) {
			b.AddOutput(NewChangeOutput(changeOwner, asset))
		}
	}
}

// distinctAssets lists the assets carried by resource inputs, in first-
// seen order.
func distinctAssets(inputs []Input) []AssetID {
	var assets []AssetID
	seen := make(map[AssetID]struct{}, len(inputs))
	for _, in := range inputs {
		if !in.IsResource() {
			continue
		}
		asset := in.ResourceAssetID()
		if _, ok := seen[asset]; ok {
			continue
		}
		seen[asset] = struct{}{}
		assets = append(assets, asset)
	}
	return assets
}

func hasChangeOutput(outputs []Output, owner Address, asset AssetID) bool {
	for _, out := range outputs {
		if out.Type == OutputTypeChange && out.To == owner && out.AssetID == asset {
			return true
		}
	}
	return false
}
