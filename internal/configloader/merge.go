package configloader

import "github.com/yaklabco/markview/pkg/config"

// merge layers override onto base and returns a new Config.
//   - Strings and numbers: override wins when non-zero.
//   - *bool: override wins when non-nil, so files can turn defaults off.
//   - Slices: override replaces base when non-nil.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	mergePreview(&result.Preview, override.Preview)
	mergePage(&result.Page, override.Page)

	setBool(&result.Export.Backups, override.Export.Backups)
	setString(&result.Export.FileMode, override.Export.FileMode)

	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Ignore != nil {
		result.Ignore = append([]string(nil), override.Ignore...)
	}

	setString(&result.OutDir, override.OutDir)
	if override.NoBackups {
		result.NoBackups = true
	}

	return result
}

func mergePreview(dst *config.PreviewConfig, src config.PreviewConfig) {
	if src.Flavor != "" {
		dst.Flavor = src.Flavor
	}
	setBool(&dst.HardWraps, src.HardWraps)
	setBool(&dst.TOC, src.TOC)
	setBool(&dst.Highlight, src.Highlight)
	setString(&dst.HighlightStyle, src.HighlightStyle)
	setString(&dst.Title, src.Title)
}

func mergePage(dst *config.PageConfig, src config.PageConfig) {
	setString(&dst.Size, src.Size)
	setFloat(&dst.Margins.Left, src.Margins.Left)
	setFloat(&dst.Margins.Right, src.Margins.Right)
	setFloat(&dst.Margins.Top, src.Margins.Top)
	setFloat(&dst.Margins.Bottom, src.Margins.Bottom)
	setFloat(&dst.BodySize, src.BodySize)
	setFloat(&dst.CodeSize, src.CodeSize)
	setString(&dst.HeadingColor, src.HeadingColor)
	setString(&dst.CodeBackground, src.CodeBackground)
	setString(&dst.InlineCodeColor, src.InlineCodeColor)
	setString(&dst.InlineCodeBackground, src.InlineCodeBackground)
	setFloat(&dst.HeadingSpacer, src.HeadingSpacer)
	setFloat(&dst.BodySpacer, src.BodySpacer)
	setFloat(&dst.BlockSpacer, src.BlockSpacer)
	setBool(&dst.CodeCaptions, src.CodeCaptions)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func setBool(dst **bool, v *bool) {
	if v != nil {
		*dst = config.Bool(*v)
	}
}

// MergeAll merges configurations in order; later ones take precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}
	result := configs[0]
	for _, c := range configs[1:] {
		result = merge(result, c)
	}
	return result
}
