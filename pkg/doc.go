// Package pkg holds the workflowdot libraries.
//
// # Overview
//
// workflowdot turns a workflow description, one YAML document per task,
// into a Graphviz DOT file typeset with dot2tex. The libraries are:
//
//  1. [workflow] - Task records and the YAML stream loader
//  2. [render/texdot] - Label escaping, node names and DOT emission
//  3. [config] - Optional TOML settings for the graph prologue
//  4. [pipeline] - Orchestration (load → validate → emit → preview)
//  5. [errors] - Coded errors shared by all of the above
//
// # Data Flow
//
//	workflow.yaml
//	     ↓
//	[workflow] package (ordered task records)
//	     ↓
//	[render/texdot] package (escaped labels, node_<hash> names)
//	     ↓
//	workflow.dot (and optionally workflow.svg)
//
// # Quick Start
//
//	tasks, err := workflow.ImportTasks("workflow.yaml")
//	if err != nil {
//	    return err
//	}
//	dot := texdot.ToDOT(tasks, texdot.Options{})
//	return texdot.ExportDOT(texdot.OutputPath("workflow.yaml"), dot)
package pkg
