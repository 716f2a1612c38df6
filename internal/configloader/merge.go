package configloader

import "github.com/yaklabco/mdconv/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// Scalars overwrite when non-zero; slices replace entirely when non-nil.
// Booleans can only be switched on by an override, not unset, which matches
// how the CLI flags behave.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.OutDir != "" {
		result.OutDir = override.OutDir
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	if override.Collect {
		result.Collect = true
	}
	if override.FollowSymlinks {
		result.FollowSymlinks = true
	}
	if override.CheckOnly {
		result.CheckOnly = true
	}
	if override.Stdout {
		result.Stdout = true
	}

	if override.Extensions != nil {
		result.Extensions = override.Extensions
	}
	if override.Exclude != nil {
		result.Exclude = override.Exclude
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking
// precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
