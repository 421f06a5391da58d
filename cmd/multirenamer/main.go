package main

import (
	"fmt"
	"io"
	"os"

	"github.com/littlesmith/arguments"
	"github.com/littlesmith/arguments/renamer"
	"github.com/littlesmith/arguments/types"
	"github.com/littlesmith/arguments/util"
	"github.com/littlesmith/arguments/version"
)

const defaultEditor = "vi"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func newArguments(stdout io.Writer) (*arguments.Arguments, error) {
	return arguments.New(
		arguments.WithApplication("multirenamer"),
		arguments.WithVersion(version.New(1, 0, 0)),
		arguments.WithDescription("A simple tool to bulk rename files using your favourite tool (text editor, script, whatever)"),
		arguments.WithCopyright("ⓒ 2025 by littlesmith"),
		arguments.WithWriter(stdout),
		arguments.WithSwitch("scan", "s"),
		arguments.WithArgumentDescription("scan", "Scan the rename on a directory"),
		arguments.WithSwitch("rename", "r"),
		arguments.WithArgumentDescription("rename", "Perform the rename on a directory"),
		arguments.WithValue("path", "p", types.StringType, "", true),
		arguments.WithArgumentDescription("path", "The path to scan for files to rename. If omitted, the current directory will be used"),
		arguments.WithSwitch("recursive", "R"),
		arguments.WithArgumentDescription("recursive", "Files in subdirectories will also be renamed (only relevant with --scan)"),
		arguments.WithValue("newer", "n", types.DateType, "", true),
		arguments.WithArgumentDescription("newer", "Only list files modified after this date (only relevant with --scan)"),
		arguments.WithValue("case", "c", types.StringType, "", true),
		arguments.WithArgumentDescription("case", "Suggest new names in kebab, snake, camel or lower case (only relevant with --scan)"),
		arguments.WithSwitch("edit", "e"),
		arguments.WithArgumentDescription("edit", "Open the rename file in $VISUAL or $EDITOR after scanning"))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmdLine, err := newArguments(stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if !cmdLine.Parse(args) {
		return 1
	}
	cmdLine.PrintHeader()

	path, _ := cmdLine.GetString("path")
	if path == "" {
		if path, err = os.Getwd(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	scan, _ := cmdLine.GetBool("scan")
	rename, _ := cmdLine.GetBool("rename")
	if !scan && !rename {
		fmt.Fprintln(stderr, "Please specify either --scan or --rename!")
		cmdLine.PrintUsage()
		return 1
	}

	r := renamer.New(path)
	if scan {
		err = runScan(cmdLine, r, stdout)
	} else {
		err = r.Rename()
		if err == nil {
			if r.Failed() {
				fmt.Fprintln(stdout, "Some renames failed. See log.")
			} else {
				fmt.Fprintln(stdout, "Everything was renamed successfully.")
			}
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error while renaming:")
		fmt.Fprintln(stderr, err)
		return 1
	}

	return 0
}

func runScan(cmdLine *arguments.Arguments, r *renamer.Renamer, stdout io.Writer) error {
	opts := renamer.ScanOptions{}
	opts.Recursive, _ = cmdLine.GetBool("recursive")
	if a := cmdLine.Argument("newer"); a.IsSet() {
		newer, err := cmdLine.GetDate("newer")
		if err != nil {
			return err
		}
		opts.NewerThan = newer
	}
	nameCase, _ := cmdLine.GetString("case")
	c, err := renamer.ParseCase(nameCase)
	if err != nil {
		return err
	}
	opts.Case = c

	n, err := r.Scan(opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Listed %d files in %s\n", n, r.RenameList())

	edit, _ := cmdLine.GetBool("edit")
	if !edit {
		return nil
	}
	if !util.IsInteractive(nil, os.Stdin, os.Stdout) {
		fmt.Fprintln(stdout, "Not a terminal, edit the rename file and run again with --rename.")
		return nil
	}

	return r.Edit(editor())
}

func editor() string {
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if e := os.Getenv(name); e != "" {
			return e
		}
	}

	return defaultEditor
}
