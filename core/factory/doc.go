// Package factory is the generic registry behind every pluggable part of the
// parser: sheet readers, exporters and metrics sinks. A module is selected by
// its type name and configured with a loose map that Decode turns into the
// module's own settings struct.
//
//	reg := factory.NewRegistry[export.Exporter]()
//	_ = reg.Register("json", func(conf map[string]any) (export.Exporter, error) {
//	    var c struct{ Path string `json:"path"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return &export.JSONExporter{Path: c.Path}, nil
//	})
//	exp, err := reg.Create(factory.ModuleConfig{Type: "json", Conf: map[string]any{"path": "-"}})
package factory
